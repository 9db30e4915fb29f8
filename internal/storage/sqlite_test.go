//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"genotype/internal/model"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "genotype.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	versioned := model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion}
	record := model.GenotypeRecord{
		VersionedRecord: versioned,
		ID:              "g1",
		Kind:            "shape",
		Params:          []float64{1.0, 1.0, 0.1},
	}
	if err := store.SaveGenotype(ctx, record); err != nil {
		t.Fatalf("save genotype: %v", err)
	}

	loaded, ok, err := store.GetGenotype(ctx, "g1")
	if err != nil {
		t.Fatalf("get genotype: %v", err)
	}
	if !ok || loaded.Kind != "shape" || len(loaded.Params) != 3 {
		t.Fatalf("unexpected record loaded: %+v", loaded)
	}

	run := model.MutationRun{
		VersionedRecord: versioned,
		RunID:           "r1",
		Kind:            "shape",
		Generator:       "const",
		Passes:          1,
		CreatedAtUTC:    "2026-08-23T00:00:00Z",
		Before:          []float64{0.5, 0.5, 0},
		After:           []float64{1.0, 1.0, 0.1},
	}
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save run: %v", err)
	}

	got, ok, err := store.GetRun(ctx, "r1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok || got.Generator != "const" || len(got.After) != 3 {
		t.Fatalf("unexpected run loaded: %+v", got)
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != "r1" {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}

func TestSQLiteStoreMissingLookups(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "genotype.db"))
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if _, ok, err := store.GetGenotype(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing genotype, ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.GetRun(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing run, ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Init(context.Background()); err == nil {
		t.Fatal("expected missing path error")
	}
}
