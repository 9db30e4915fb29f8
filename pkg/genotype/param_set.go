package genotype

import "fmt"

// ParamSet2d is a fixed pair of genes, typically two spatial dimensions.
// Children may be heterogeneous; X is index 0, Y is index 1.
type ParamSet2d struct {
	X, Y RangedParam
}

func NewParamSet2d(x, y RangedParam) *ParamSet2d {
	return &ParamSet2d{X: x, Y: y}
}

func (s *ParamSet2d) ParamCount() int { return 2 }

func (s *ParamSet2d) Param(index int) RangedParam {
	switch index {
	case 0:
		return s.X
	case 1:
		return s.Y
	}
	badIndex(index, 2)
	return nil
}

// Components returns both gene values in declaration order.
func (s *ParamSet2d) Components() (x, y Param) {
	return s.X.Get(), s.Y.Get()
}

// ParamSet3d is a fixed triple of genes, typically x/y/z components.
type ParamSet3d struct {
	X, Y, Z RangedParam
}

func NewParamSet3d(x, y, z RangedParam) *ParamSet3d {
	return &ParamSet3d{X: x, Y: y, Z: z}
}

func (s *ParamSet3d) ParamCount() int { return 3 }

func (s *ParamSet3d) Param(index int) RangedParam {
	switch index {
	case 0:
		return s.X
	case 1:
		return s.Y
	case 2:
		return s.Z
	}
	badIndex(index, 3)
	return nil
}

// Components returns all three gene values in declaration order.
func (s *ParamSet3d) Components() (x, y, z Param) {
	return s.X.Get(), s.Y.Get(), s.Z.Get()
}

// Group is a composite over an arbitrary child list. The flat index space
// [0, ParamCount()) is partitioned into contiguous sub-ranges, one per child,
// in construction order. Child order is fixed for the lifetime of the group.
type Group struct {
	children []ParamHolder
	offsets  []int
	total    int
}

// NewGroup builds a composite from the given children. Child counts are read
// once here; a child whose count changes afterwards breaks the index
// contract.
func NewGroup(children ...ParamHolder) (*Group, error) {
	offsets := make([]int, len(children))
	total := 0
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("nil child at position %d", i)
		}
		n := child.ParamCount()
		if n < 0 {
			return nil, fmt.Errorf("child %d reports negative param count %d", i, n)
		}
		offsets[i] = total
		total += n
	}
	return &Group{children: children, offsets: offsets, total: total}, nil
}

func (g *Group) ParamCount() int { return g.total }

func (g *Group) Param(index int) RangedParam {
	if index < 0 || index >= g.total {
		badIndex(index, g.total)
	}
	for i := len(g.children) - 1; i >= 0; i-- {
		if index >= g.offsets[i] {
			return g.children[i].Param(index - g.offsets[i])
		}
	}
	badIndex(index, g.total)
	return nil
}
