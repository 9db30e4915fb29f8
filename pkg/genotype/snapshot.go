package genotype

import "fmt"

// Snapshot captures every gene value of h as a flat slice in index order.
func Snapshot(h ParamHolder) []Param {
	n := h.ParamCount()
	out := make([]Param, n)
	for i := 0; i < n; i++ {
		out[i] = h.Param(i).Get()
	}
	return out
}

// Restore writes vals back into h in index order, clamping each value into
// its gene's range. Persisted snapshots are runtime input, so a length
// mismatch is an error rather than a panic.
func Restore(h ParamHolder, vals []Param) error {
	n := h.ParamCount()
	if len(vals) != n {
		return fmt.Errorf("restore: have %d values, holder has %d params", len(vals), n)
	}
	for i := 0; i < n; i++ {
		p := h.Param(i)
		lo, hi := p.Range()
		p.Set(Clamp(vals[i], lo, hi))
	}
	return nil
}
