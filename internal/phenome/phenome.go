// Package phenome holds small example phenotypes used by the CLI and as
// reference implementations of the genotype contracts.
package phenome

import (
	"fmt"

	"genotype/pkg/genotype"
)

const (
	KindShape    = "shape"
	KindCreature = "creature"
	KindCuboid   = "cuboid"
)

// Kinds lists the registered example phenotypes.
func Kinds() []string {
	return []string{KindShape, KindCreature, KindCuboid}
}

// New builds the named example phenotype with its default gene values,
// wrapped in a shared handle.
func New(kind string) (*genotype.Handle, error) {
	switch kind {
	case KindShape:
		return genotype.NewHandle(NewShape()), nil
	case KindCreature:
		return genotype.NewHandle(NewCreature()), nil
	case KindCuboid:
		return genotype.NewHandle(NewCuboid()), nil
	default:
		return nil, fmt.Errorf("unknown phenome kind: %s", kind)
	}
}
