package storage

import (
	"context"

	"genotype/internal/model"
)

// Store persists genotype snapshots and mutation runs.
type Store interface {
	Init(ctx context.Context) error
	SaveGenotype(ctx context.Context, record model.GenotypeRecord) error
	GetGenotype(ctx context.Context, id string) (model.GenotypeRecord, bool, error)
	SaveRun(ctx context.Context, run model.MutationRun) error
	GetRun(ctx context.Context, runID string) (model.MutationRun, bool, error)
	ListRuns(ctx context.Context, limit int) ([]model.MutationRun, error)
}
