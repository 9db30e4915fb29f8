package phenome

import (
	"fmt"

	"genotype/pkg/genotype"
)

// Shape is a 2d cuboid in space with a rotation. Gene order: dimension x,
// dimension y, rotation.
type Shape struct {
	Dimensions *genotype.ParamSet2d
	Rotation   *Rotation
}

func NewShape() *Shape {
	return &Shape{
		Dimensions: genotype.NewParamSet2d(NewDimension(0.5), NewDimension(0.5)),
		Rotation:   NewRotation(0.0),
	}
}

func (s *Shape) ParamCount() int {
	return s.Dimensions.ParamCount() + 1
}

func (s *Shape) Param(index int) genotype.RangedParam {
	dims := s.Dimensions.ParamCount()
	switch {
	case index >= 0 && index < dims:
		return s.Dimensions.Param(index)
	case index == dims:
		return s.Rotation
	}
	panic(fmt.Sprintf("phenome: shape index %d out of range [0,%d)", index, dims+1))
}

// Creature pairs a body weight with a height.
type Creature struct {
	Weight *Weight
	Height *Height
}

func NewCreature() *Creature {
	return &Creature{
		Weight: NewWeight(70.0),
		Height: NewHeight(160.0),
	}
}

func (c *Creature) ParamCount() int { return 2 }

func (c *Creature) Param(index int) genotype.RangedParam {
	switch index {
	case 0:
		return c.Weight
	case 1:
		return c.Height
	}
	panic(fmt.Sprintf("phenome: creature index %d out of range [0,2)", index))
}

// Cuboid is a box with three side lengths, delegating fully to its set.
type Cuboid struct {
	Lengths *genotype.ParamSet3d
}

func NewCuboid() *Cuboid {
	return &Cuboid{
		Lengths: genotype.NewParamSet3d(NewLength(2.5), NewLength(5.0), NewLength(7.5)),
	}
}

func (c *Cuboid) ParamCount() int { return c.Lengths.ParamCount() }

func (c *Cuboid) Param(index int) genotype.RangedParam {
	return c.Lengths.Param(index)
}
