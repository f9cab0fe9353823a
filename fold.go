// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep

import "golang.org/x/exp/constraints"

// Folds.
// Folding consumes slots through [Enumerable] in the instance's order and
// never rebuilds a container.

// Monoid packages an associative combine with its identity element.
// Lawful values satisfy Combine(Empty, m) == Combine(m, Empty) == m and
// Combine(Combine(a, b), c) == Combine(a, Combine(b, c)).
type Monoid[M any] struct {
	Empty   M
	Combine func(M, M) M
}

// SliceMonoid is the concatenation monoid. Combine returns a freshly
// allocated slice; neither argument's backing array is shared with the
// result.
func SliceMonoid[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Empty: nil,
		Combine: func(a, b []T) []T {
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// SumMonoid is the addition monoid over any integer or float type.
func SumMonoid[T constraints.Integer | constraints.Float]() Monoid[T] {
	return Monoid[T]{
		Empty: 0,
		Combine: func(a, b T) T {
			return a + b
		},
	}
}

// FoldMapWithPath maps every slot to a monoid value and combines the
// results in enumeration order, starting from mo.Empty.
func FoldMapWithPath[FA, A, M any](en Enumerable[FA, A], mo Monoid[M], m FA, f func(Path, A) M) M {
	acc := mo.Empty
	for p, a := range en.All(m) {
		acc = mo.Combine(acc, f(p, a))
	}
	return acc
}

// FoldrWithPath folds the slots from the last enumerated slot back to the
// first: the callback sees each slot together with the fold of everything
// after it, seeded with seed.
func FoldrWithPath[FA, A, B any](en Enumerable[FA, A], m FA, seed B, f func(Path, A, B) B) B {
	paths, vals := collectSlots(en, m)
	acc := seed
	for i := len(paths) - 1; i >= 0; i-- {
		acc = f(paths[i], vals[i], acc)
	}
	return acc
}
