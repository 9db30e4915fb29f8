package storage

import (
	"context"
	"sync"

	"genotype/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	genotypes   map[string]model.GenotypeRecord
	runs        map[string]model.MutationRun
	runOrder    []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.genotypes = make(map[string]model.GenotypeRecord)
	s.runs = make(map[string]model.MutationRun)
	s.runOrder = nil
	return nil
}

func (s *MemoryStore) SaveGenotype(_ context.Context, record model.GenotypeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.genotypes[record.ID] = record
	return nil
}

func (s *MemoryStore) GetGenotype(_ context.Context, id string) (model.GenotypeRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.genotypes[id]
	return record, ok, nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run model.MutationRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.RunID]; !exists {
		s.runOrder = append(s.runOrder, run.RunID)
	}
	s.runs[run.RunID] = run
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, runID string) (model.MutationRun, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[runID]
	return run, ok, nil
}

func (s *MemoryStore) ListRuns(_ context.Context, limit int) ([]model.MutationRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MutationRun, 0, len(s.runOrder))
	// Most recent first.
	for i := len(s.runOrder) - 1; i >= 0; i-- {
		out = append(out, s.runs[s.runOrder[i]])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
