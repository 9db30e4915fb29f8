package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// GenotypeRecord is a flat snapshot of a phenotype's genes in index order.
type GenotypeRecord struct {
	VersionedRecord
	ID     string    `json:"id"`
	Kind   string    `json:"kind"`
	Params []float64 `json:"params"`
}

// MutationRun records one mutation pass over a phenome.
type MutationRun struct {
	VersionedRecord
	RunID        string    `json:"run_id"`
	Kind         string    `json:"kind"`
	Generator    string    `json:"generator"`
	Seed         int64     `json:"seed"`
	Passes       int       `json:"passes"`
	CreatedAtUTC string    `json:"created_at_utc"`
	Before       []float64 `json:"before"`
	After        []float64 `json:"after"`
}
