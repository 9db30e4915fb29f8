package storage

import (
	"encoding/json"
	"errors"

	"genotype/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeGenotype(r model.GenotypeRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeGenotype(data []byte) (model.GenotypeRecord, error) {
	var record model.GenotypeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.GenotypeRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.GenotypeRecord{}, err
	}
	return record, nil
}

func EncodeRun(r model.MutationRun) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeRun(data []byte) (model.MutationRun, error) {
	var run model.MutationRun
	if err := json.Unmarshal(data, &run); err != nil {
		return model.MutationRun{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.MutationRun{}, err
	}
	return run, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
