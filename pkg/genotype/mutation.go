package genotype

import (
	"errors"
	"math/rand"
)

// MutationGen produces one delta per addressed gene during a mutate pass.
// Generators may be stateful; a single mutate call owns its generator
// exclusively for the call's duration.
type MutationGen interface {
	Next() Param
}

// ConstGen yields the same delta on every call. Useful for deterministic
// tests and calibration passes.
type ConstGen Param

func (g ConstGen) Next() Param { return Param(g) }

// UniformGen yields deltas drawn uniformly from [-MaxDelta, +MaxDelta].
type UniformGen struct {
	rand     *rand.Rand
	maxDelta float64
}

func NewUniformGen(r *rand.Rand, maxDelta float64) (*UniformGen, error) {
	if r == nil {
		return nil, errors.New("random source is required")
	}
	if maxDelta <= 0 {
		return nil, errors.New("max delta must be > 0")
	}
	return &UniformGen{rand: r, maxDelta: maxDelta}, nil
}

func (g *UniformGen) Next() Param {
	return (g.rand.Float64()*2 - 1) * g.maxDelta
}

// GaussianGen yields normally distributed deltas with mean 0.
type GaussianGen struct {
	rand   *rand.Rand
	stdDev float64
}

func NewGaussianGen(r *rand.Rand, stdDev float64) (*GaussianGen, error) {
	if r == nil {
		return nil, errors.New("random source is required")
	}
	if stdDev <= 0 {
		return nil, errors.New("std dev must be > 0")
	}
	return &GaussianGen{rand: r, stdDev: stdDev}, nil
}

func (g *GaussianGen) Next() Param {
	return g.rand.NormFloat64() * g.stdDev
}

// SequenceGen replays a fixed list of deltas, cycling when exhausted.
type SequenceGen struct {
	deltas []Param
	next   int
}

func NewSequenceGen(deltas ...Param) (*SequenceGen, error) {
	if len(deltas) == 0 {
		return nil, errors.New("at least one delta is required")
	}
	return &SequenceGen{deltas: append([]Param(nil), deltas...)}, nil
}

func (g *SequenceGen) Next() Param {
	d := g.deltas[g.next]
	g.next = (g.next + 1) % len(g.deltas)
	return d
}

// Mutate walks every gene of the handle's tree in ascending index order,
// adds one generator delta to each and clamps the result into the gene's
// declared range. The root is borrowed exclusively for the duration of the
// pass; overlapping access panics. The pass performs exactly ParamCount
// generator calls and writes, including writes of unchanged values. A holder
// that breaks the index contract panics mid-pass; genes already written stay
// written.
func Mutate(h *Handle, g MutationGen) {
	root, release := h.Borrow()
	defer release()

	n := root.ParamCount()
	for i := 0; i < n; i++ {
		p := root.Param(i)
		lo, hi := p.Range()
		p.Set(Clamp(p.Get()+g.Next(), lo, hi))
	}
}
