// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep

import "iter"

// Identity is the one-slot container: a bare value with container
// structure. It is the smallest lawful instance and the base case other
// instances are checked against.
type Identity[A any] struct {
	Value A
}

type identityKey struct{}

// IdentityRep witnesses [Identity]. The shape has exactly one slot.
type IdentityRep[A any] struct{}

// Tabulate asks choose for the single slot.
func (IdentityRep[A]) Tabulate(choose func(Path) A) Identity[A] {
	return Identity[A]{Value: choose(PathOf(identityKey{}))}
}

// At resolves the single slot's lens.
func (IdentityRep[A]) At(p Path) Lens[Identity[A], A] {
	Key[identityKey](p)
	return NewLens(
		func(m Identity[A]) A { return m.Value },
		func(_ Identity[A], a A) Identity[A] { return Identity[A]{Value: a} },
	)
}

// All yields the single slot.
func (IdentityRep[A]) All(m Identity[A]) iter.Seq2[Path, A] {
	return func(yield func(Path, A) bool) {
		yield(PathOf(identityKey{}), m.Value)
	}
}
