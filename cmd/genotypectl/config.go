package main

import (
	"encoding/json"
	"math"
	"os"
)

func loadMutateRequestFromConfig(path string) (mutateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mutateRequest{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return mutateRequest{}, err
	}

	req := mutateRequest{
		Phenome:   "shape",
		Generator: "uniform",
		Delta:     0.1,
		StdDev:    0.1,
		Passes:    1,
		StoreKind: "memory",
		DBPath:    "genotype.db",
	}
	if v, ok := asString(raw["run_id"]); ok {
		req.RunID = v
	}
	if v, ok := asString(raw["phenome"]); ok {
		req.Phenome = v
	}
	if v, ok := asString(raw["generator"]); ok {
		req.Generator = v
	}
	if v, ok := asFloat64(raw["delta"]); ok {
		req.Delta = v
	}
	if v, ok := asFloat64(raw["stddev"]); ok {
		req.StdDev = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asInt(raw["passes"]); ok {
		req.Passes = v
	}
	if v, ok := asString(raw["store"]); ok {
		req.StoreKind = v
	}
	if v, ok := asString(raw["db_path"]); ok {
		req.DBPath = v
	}
	return req, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat64(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.Trunc(f) != f {
		return 0, false
	}
	return int(f), true
}

func asInt64(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || math.Trunc(f) != f {
		return 0, false
	}
	return int64(f), true
}
