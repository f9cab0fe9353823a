// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep

import "code.hybscloud.com/kont"

// Accessor primitives.
// A Lens focuses exactly one slot of an immutable structure and supports
// read, replace, and update of that slot. [Representable.At] resolves a
// [Path] to the Lens for the addressed slot.

// Lens provides access to one slot of an immutable structure.
// Lens[S, A] reads and replaces a value of type A inside a structure of
// type S. A Lens owns no structure; it only denotes a position within any
// value of the matching shape.
//
// Well-behaved lenses satisfy three laws:
//
//   - get-set: l.Set(s, l.Get(s)) ≡ s
//   - set-get: l.Get(l.Set(s, a)) ≡ a
//   - set-set: l.Set(l.Set(s, a), b) ≡ l.Set(s, b)
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get reads the focused slot.
func (l Lens[S, A]) Get(s S) A {
	return l.get(s)
}

// Set returns a new structure with the focused slot replaced.
// The input structure is not modified.
func (l Lens[S, A]) Set(s S, a A) S {
	return l.set(s, a)
}

// Modify applies a pure function to the focused slot.
func (l Lens[S, A]) Modify(s S, f func(A) A) S {
	return l.set(s, f(l.get(s)))
}

// TryModify applies a fallible function to the focused slot.
// On error the structure is returned unchanged alongside the error.
func (l Lens[S, A]) TryModify(s S, f func(A) (A, error)) (S, error) {
	a, err := f(l.get(s))
	if err != nil {
		return s, err
	}
	return l.set(s, a), nil
}

// Update applies an effectful function to the focused slot, producing the
// updated structure inside the effect. This is the functorial form of
// [Lens.Modify] over [kont.Eff]: the slot's effect runs, and its result
// replaces the slot.
func Update[S, A any](l Lens[S, A], s S, f func(A) kont.Eff[A]) kont.Eff[S] {
	return kont.Map(f(l.get(s)), func(a A) S {
		return l.set(s, a)
	})
}

// Compose creates a lens focusing deeper: outer selects an A within S,
// inner selects a B within that A.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// IdentityLens creates the lens that focuses the whole structure.
// It is the identity element of [Compose].
func IdentityLens[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// Iso is a bidirectional conversion between S and A.
// Get and ReverseGet are mutually inverse for a lawful Iso.
type Iso[S, A any] struct {
	get        func(S) A
	reverseGet func(A) S
}

// NewIso creates an isomorphism from the two conversion directions.
func NewIso[S, A any](get func(S) A, reverseGet func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, reverseGet: reverseGet}
}

// Get converts forward.
func (i Iso[S, A]) Get(s S) A {
	return i.get(s)
}

// ReverseGet converts backward.
func (i Iso[S, A]) ReverseGet(a A) S {
	return i.reverseGet(a)
}

// Reverse flips the isomorphism.
func (i Iso[S, A]) Reverse() Iso[A, S] {
	return Iso[A, S]{get: i.reverseGet, reverseGet: i.get}
}
