package phenome

import "genotype/pkg/genotype"

// Dimension is a length in space in one dimension, 1m to 20m.
type Dimension struct {
	v genotype.Param
}

func NewDimension(v genotype.Param) *Dimension { return &Dimension{v: v} }

func (d *Dimension) Range() (lo, hi genotype.Param) { return 1.0, 20.0 }
func (d *Dimension) Get() genotype.Param            { return d.v }
func (d *Dimension) Set(v genotype.Param)           { d.v = v }

// Rotation is an angle in degrees, 0 to 360.
type Rotation struct {
	v genotype.Param
}

func NewRotation(v genotype.Param) *Rotation { return &Rotation{v: v} }

func (r *Rotation) Range() (lo, hi genotype.Param) { return 0.0, 360.0 }
func (r *Rotation) Get() genotype.Param            { return r.v }
func (r *Rotation) Set(v genotype.Param)           { r.v = v }

// Weight is a body weight in kilograms, 40 to 100.
type Weight struct {
	v genotype.Param
}

func NewWeight(v genotype.Param) *Weight { return &Weight{v: v} }

func (w *Weight) Range() (lo, hi genotype.Param) { return 40.0, 100.0 }
func (w *Weight) Get() genotype.Param            { return w.v }
func (w *Weight) Set(v genotype.Param)           { w.v = v }

// Height is a body height in centimetres, 140 to 185.
type Height struct {
	v genotype.Param
}

func NewHeight(v genotype.Param) *Height { return &Height{v: v} }

func (h *Height) Range() (lo, hi genotype.Param) { return 140.0, 185.0 }
func (h *Height) Get() genotype.Param            { return h.v }
func (h *Height) Set(v genotype.Param)           { h.v = v }

// Length is a side length, 0 to 10.
type Length struct {
	v genotype.Param
}

func NewLength(v genotype.Param) *Length { return &Length{v: v} }

func (l *Length) Range() (lo, hi genotype.Param) { return 0.0, 10.0 }
func (l *Length) Get() genotype.Param            { return l.v }
func (l *Length) Set(v genotype.Param)           { l.v = v }
