package theme

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolvesAllKnownTemplates(t *testing.T) {
	reg := NewRegistry(log.New(&bytes.Buffer{}, "", 0))

	known := []string{"starter", "luxury", "modern", "classic", "minimal", "portfolio", "christmas", "blossom", "grid"}
	require.ElementsMatch(t, known, reg.TemplateIDs())

	for _, id := range known {
		th := reg.Resolve(id)
		require.NotNil(t, th)
		assert.Equal(t, id, th.Name())
	}
}

func TestRegistryFallsBackToClassic(t *testing.T) {
	tests := []string{"nonexistent-theme", "", "CLASSIC", "starter "}

	for _, id := range tests {
		t.Run("id="+id, func(t *testing.T) {
			var diag bytes.Buffer
			reg := NewRegistry(log.New(&diag, "", 0))

			th := reg.Resolve(id)
			require.NotNil(t, th)
			assert.Equal(t, "classic", th.Name())
			assert.Contains(t, diag.String(), "unknown template id", "diagnostic should be emitted")
		})
	}
}

func TestRegistryResolveKnownEmitsNoDiagnostic(t *testing.T) {
	var diag bytes.Buffer
	reg := NewRegistry(log.New(&diag, "", 0))

	reg.Resolve("luxury")
	assert.Empty(t, diag.String())
}
