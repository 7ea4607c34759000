package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	entries := Cart{}.AddService(svcCut).AddProduct(prodOil).AddProduct(prodOil).Entries()

	payload, err := encodeSnapshot(entries)
	require.NoError(t, err)

	got, err := decodeSnapshot(payload)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	tests := map[string]string{
		"truncated json":      `{not json`,
		"foreign shape":       `{"hello":"world"}`,
		"json array":          `[{"type":"service"}]`,
		"unknown version":     `{"schemaVersion":99,"entries":[]}`,
		"missing version":     `{"entries":[]}`,
		"unknown entry type":  `{"schemaVersion":1,"entries":[{"type":"bundle","id":"b1","quantity":1}]}`,
		"entry without id":    `{"schemaVersion":1,"entries":[{"type":"product","product":{"id":"p"},"quantity":1}]}`,
		"product without ref": `{"schemaVersion":1,"entries":[{"type":"product","id":"p1","quantity":1}]}`,
		"zero quantity":       `{"schemaVersion":1,"entries":[{"type":"product","id":"p1","product":{"id":"p1"},"quantity":0}]}`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := decodeSnapshot([]byte(payload))
			require.Error(t, err)
			assert.Nil(t, got)
		})
	}
}
