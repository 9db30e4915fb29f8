package genotype

import "sync/atomic"

// Handle shares a phenotype root between a caller and mutate passes while
// keeping mutable access exclusive. Exclusivity is a runtime borrow flag:
// overlapping borrows are a contract violation and panic instead of racing.
// Copies of a *Handle all refer to the same root and the same flag.
type Handle struct {
	root     ParamHolder
	borrowed atomic.Bool
}

func NewHandle(root ParamHolder) *Handle {
	if root == nil {
		panic("genotype: nil root")
	}
	return &Handle{root: root}
}

// Borrow grants exclusive access to the root until release is called.
// Borrowing an already-borrowed handle panics.
func (h *Handle) Borrow() (ParamHolder, func()) {
	if !h.borrowed.CompareAndSwap(false, true) {
		panic("genotype: root is already borrowed")
	}
	return h.root, func() { h.borrowed.Store(false) }
}

// Inspect borrows the root for the duration of fn. The same exclusivity
// rule applies; fn must not retain the holder past its return.
func (h *Handle) Inspect(fn func(ParamHolder)) {
	root, release := h.Borrow()
	defer release()
	fn(root)
}
