package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMutateRequestFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"run_id": "r42",
		"phenome": "creature",
		"generator": "const",
		"delta": 0.25,
		"seed": 7,
		"passes": 3,
		"store": "sqlite",
		"db_path": "out.db"
	}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	req, err := loadMutateRequestFromConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if req.RunID != "r42" || req.Phenome != "creature" || req.Generator != "const" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Delta != 0.25 || req.Seed != 7 || req.Passes != 3 {
		t.Fatalf("unexpected numeric fields: %+v", req)
	}
	if req.StoreKind != "sqlite" || req.DBPath != "out.db" {
		t.Fatalf("unexpected store fields: %+v", req)
	}
}

func TestLoadMutateRequestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	req, err := loadMutateRequestFromConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if req.Phenome != "shape" || req.Generator != "uniform" || req.Passes != 1 {
		t.Fatalf("unexpected defaults: %+v", req)
	}
}

func TestLoadMutateRequestBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadMutateRequestFromConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMutateRequestMissingFile(t *testing.T) {
	if _, err := loadMutateRequestFromConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestAsIntRejectsFractions(t *testing.T) {
	if _, ok := asInt(1.5); ok {
		t.Fatal("expected fractional value rejected")
	}
	if v, ok := asInt(float64(4)); !ok || v != 4 {
		t.Fatalf("expected 4, got=%d ok=%v", v, ok)
	}
	if _, ok := asInt64("7"); ok {
		t.Fatal("expected string rejected")
	}
}
