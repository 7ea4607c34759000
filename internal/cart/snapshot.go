package cart

import (
	"encoding/json"
	"fmt"
)

// snapshotSchemaVersion tags persisted cart payloads so the shape can evolve
// without silently misreading old records. Version bumps get a migration arm
// in decodeSnapshot; anything unrecognized is treated as corrupt.
const snapshotSchemaVersion = 1

type snapshot struct {
	SchemaVersion int     `json:"schemaVersion"`
	Entries       []Entry `json:"entries"`
}

func encodeSnapshot(entries []Entry) ([]byte, error) {
	return json.Marshal(snapshot{
		SchemaVersion: snapshotSchemaVersion,
		Entries:       entries,
	})
}

// decodeSnapshot parses a persisted payload back into entries. Any defect —
// malformed JSON, unknown schema version, an entry violating its invariants —
// is an error; callers discard the stored value and start from empty.
func decodeSnapshot(payload []byte) ([]Entry, error) {
	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snap.SchemaVersion != snapshotSchemaVersion {
		return nil, fmt.Errorf("unsupported snapshot schema version %d", snap.SchemaVersion)
	}
	for _, e := range snap.Entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid snapshot entry: %w", err)
		}
	}
	return snap.Entries, nil
}
