// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep

import "iter"

// Func is a total function viewed as a container with one slot per
// argument value. Its paths carry the argument as key, so
// PathOf(k) addresses the slot holding fn(k).
type Func[K comparable, A any] func(K) A

// FuncRep witnesses [Func] over the finite key universe Keys. The slot
// set and enumeration order are exactly Keys, in order; Keys must be
// duplicate-free.
type FuncRep[K comparable, A any] struct {
	Keys []K
}

// Tabulate builds the function by asking choose once per key, in Keys
// order, and capturing the answers. Applying the result outside the key
// universe yields the zero value of A.
func (r FuncRep[K, A]) Tabulate(choose func(Path) A) Func[K, A] {
	vals := make(map[K]A, len(r.Keys))
	for _, k := range r.Keys {
		vals[k] = choose(PathOf(k))
	}
	return func(k K) A {
		return vals[k]
	}
}

// At resolves the lens for one argument value. Get applies the function;
// Set shadows that argument with the new value and delegates every other
// argument to the previous function.
func (FuncRep[K, A]) At(p Path) Lens[Func[K, A], A] {
	k := Key[K](p)
	return NewLens(
		func(fn Func[K, A]) A { return fn(k) },
		func(fn Func[K, A], a A) Func[K, A] {
			return func(q K) A {
				if q == k {
					return a
				}
				return fn(q)
			}
		},
	)
}

// All applies the function to every key in Keys order.
func (r FuncRep[K, A]) All(fn Func[K, A]) iter.Seq2[Path, A] {
	return func(yield func(Path, A) bool) {
		for _, k := range r.Keys {
			if !yield(PathOf(k), fn(k)) {
				return
			}
		}
	}
}
