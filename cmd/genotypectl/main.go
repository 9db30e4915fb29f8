package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"genotype/internal/model"
	"genotype/internal/phenome"
	"genotype/internal/storage"
	"genotype/pkg/genotype"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "mutate":
		return runMutate(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: genotypectl <mutate|show|runs> [flags]", msg)
}

type mutateRequest struct {
	RunID     string
	Phenome   string
	Generator string
	Delta     float64
	StdDev    float64
	Seed      int64
	Passes    int
	StoreKind string
	DBPath    string
}

func runMutate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mutate", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config file")
	phenomeKind := fs.String("phenome", phenome.KindShape, "phenome kind: "+strings.Join(phenome.Kinds(), "|"))
	generator := fs.String("gen", "uniform", "generator: const|uniform|gaussian")
	delta := fs.Float64("delta", 0.1, "constant delta, or max delta for uniform")
	stdDev := fs.Float64("stddev", 0.1, "std dev for gaussian")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	passes := fs.Int("passes", 1, "number of mutation passes")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "genotype.db", "sqlite database path")
	runID := fs.String("run-id", "", "run identifier (generated when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := mutateRequest{
		RunID:     *runID,
		Phenome:   *phenomeKind,
		Generator: *generator,
		Delta:     *delta,
		StdDev:    *stdDev,
		Seed:      *seed,
		Passes:    *passes,
		StoreKind: *storeKind,
		DBPath:    *dbPath,
	}
	if *configPath != "" {
		fileReq, err := loadMutateRequestFromConfig(*configPath)
		if err != nil {
			return err
		}
		req = mergeMutateRequest(fileReq, req, fs)
	}

	runRecord, err := executeMutate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %s via %s, %d pass(es)\n", runRecord.RunID, runRecord.Kind, runRecord.Generator, runRecord.Passes)
	fmt.Printf("before: %v\n", runRecord.Before)
	fmt.Printf("after:  %v\n", runRecord.After)
	return nil
}

// mergeMutateRequest overlays flags the user set explicitly on top of the
// config file's values.
func mergeMutateRequest(base, flags mutateRequest, fs *flag.FlagSet) mutateRequest {
	merged := base
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "run-id":
			merged.RunID = flags.RunID
		case "phenome":
			merged.Phenome = flags.Phenome
		case "gen":
			merged.Generator = flags.Generator
		case "delta":
			merged.Delta = flags.Delta
		case "stddev":
			merged.StdDev = flags.StdDev
		case "seed":
			merged.Seed = flags.Seed
		case "passes":
			merged.Passes = flags.Passes
		case "store":
			merged.StoreKind = flags.StoreKind
		case "db-path":
			merged.DBPath = flags.DBPath
		}
	})
	return merged
}

func executeMutate(ctx context.Context, req mutateRequest) (model.MutationRun, error) {
	if req.Passes <= 0 {
		return model.MutationRun{}, fmt.Errorf("passes must be > 0, got %d", req.Passes)
	}

	handle, err := phenome.New(req.Phenome)
	if err != nil {
		return model.MutationRun{}, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := newGenerator(req, rand.New(rand.NewSource(seed)))
	if err != nil {
		return model.MutationRun{}, err
	}

	var before []float64
	handle.Inspect(func(root genotype.ParamHolder) {
		before = genotype.Snapshot(root)
	})

	for i := 0; i < req.Passes; i++ {
		genotype.Mutate(handle, gen)
	}

	var after []float64
	handle.Inspect(func(root genotype.ParamHolder) {
		after = genotype.Snapshot(root)
	})

	runID := req.RunID
	if runID == "" {
		runID = fmt.Sprintf("run-%d", time.Now().UTC().UnixNano())
	}
	runRecord := model.MutationRun{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		RunID:        runID,
		Kind:         req.Phenome,
		Generator:    req.Generator,
		Seed:         seed,
		Passes:       req.Passes,
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339Nano),
		Before:       before,
		After:        after,
	}

	store, err := storage.NewStore(req.StoreKind, req.DBPath)
	if err != nil {
		return model.MutationRun{}, err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return model.MutationRun{}, err
	}
	if err := store.SaveRun(ctx, runRecord); err != nil {
		return model.MutationRun{}, err
	}
	err = store.SaveGenotype(ctx, model.GenotypeRecord{
		VersionedRecord: runRecord.VersionedRecord,
		ID:              runID,
		Kind:            req.Phenome,
		Params:          after,
	})
	if err != nil {
		return model.MutationRun{}, err
	}

	return runRecord, nil
}

func newGenerator(req mutateRequest, rng *rand.Rand) (genotype.MutationGen, error) {
	switch req.Generator {
	case "const":
		return genotype.ConstGen(req.Delta), nil
	case "", "uniform":
		return genotype.NewUniformGen(rng, req.Delta)
	case "gaussian":
		return genotype.NewGaussianGen(rng, req.StdDev)
	default:
		return nil, fmt.Errorf("unknown generator: %s", req.Generator)
	}
}

func runShow(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	phenomeKind := fs.String("phenome", phenome.KindShape, "phenome kind: "+strings.Join(phenome.Kinds(), "|"))
	if err := fs.Parse(args); err != nil {
		return err
	}

	handle, err := phenome.New(*phenomeKind)
	if err != nil {
		return err
	}

	fmt.Printf("phenome %s\n", *phenomeKind)
	handle.Inspect(func(root genotype.ParamHolder) {
		for i := 0; i < root.ParamCount(); i++ {
			p := root.Param(i)
			lo, hi := p.Range()
			fmt.Printf("  [%d] value=%g range=[%g,%g] normalized=%.3f\n", i, p.Get(), lo, hi, genotype.Normalized(p))
		}
	})
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "genotype.db", "sqlite database path")
	limit := fs.Int("limit", 20, "max runs to list (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	runs, err := store.ListRuns(ctx, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  phenome=%s gen=%s passes=%d seed=%d\n",
			r.RunID, r.CreatedAtUTC, r.Kind, r.Generator, r.Passes, r.Seed)
	}
	return nil
}
