// Package genotype lets arbitrary nested phenotype structures expose a flat,
// indexable list of ranged numeric genes that can be mutated in place.
//
// A consuming program implements RangedParam for every leaf gene type and
// ParamHolder for every composite in its phenotype tree, wraps the root in a
// Handle and calls Mutate with a MutationGen. The package supplies the flat
// index protocol, the range-clamped mutation pass and reusable fixed-arity
// composites; it does not implement selection, crossover or fitness
// evaluation.
package genotype

import "fmt"

// Param is the type of a single gene value.
type Param = float64

// RangedParam is a single gene together with its legal inclusive range.
// Implementations keep lo <= hi fixed for the lifetime of the instance.
// Accessors never clamp; keeping the value inside the range is the mutate
// pass's job.
type RangedParam interface {
	// Range returns the allowed values as (lo, hi), inclusive at both ends.
	Range() (lo, hi Param)
	Get() Param
	Set(Param)
}

// ParamHolder is a node in a phenotype tree, leaf or composite, exposing
// indexed access to every gene reachable beneath it.
type ParamHolder interface {
	// ParamCount returns the number of leaf genes reachable from this node.
	ParamCount() int
	// Param returns the gene at the given flat index. Indices cover
	// [0, ParamCount()) in declaration order, first declared child first,
	// and the mapping is stable across calls. An out-of-range index is a
	// contract violation and panics.
	Param(index int) RangedParam
}

// Clamp saturates v to the inclusive interval [lo, hi].
func Clamp(v, lo, hi Param) Param {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalized returns p's value mapped onto [0, 1] within its range. A
// degenerate range (lo == hi) maps to 0.
func Normalized(p RangedParam) Param {
	lo, hi := p.Range()
	if hi == lo {
		return 0
	}
	return (p.Get() - lo) / (hi - lo)
}

// Leaf adapts a single gene into a one-parameter holder.
func Leaf(p RangedParam) ParamHolder {
	return leaf{p: p}
}

type leaf struct {
	p RangedParam
}

func (l leaf) ParamCount() int { return 1 }

func (l leaf) Param(index int) RangedParam {
	if index != 0 {
		badIndex(index, 1)
	}
	return l.p
}

func badIndex(index, count int) {
	panic(fmt.Sprintf("genotype: param index %d out of range [0,%d)", index, count))
}
