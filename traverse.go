// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep

import "code.hybscloud.com/kont"

// Position-aware traversals.
// Each traversal feeds the callback both the slot's [Path] and its value,
// so per-slot logic can branch on position. Variants come in two effect
// flavors and two argument orders:
//
//   - Try*: the callback returns (B, error); slots are visited in the
//     instance's enumeration order and the first error stops the
//     traversal (fail-fast).
//   - Eff*: the callback returns a [kont.Eff]; slot computations are
//     sequenced with [kont.Bind] in enumeration order, so each slot's
//     effect observes the effects of every earlier slot.
//   - *For*: the callback precedes the container, for call sites whose
//     callback is short enough to read first.
//   - *Each*: the callback is run for its effect only and no container is
//     rebuilt.

// MapWithPath builds the container whose slot at p holds f(p, value at p).
// It is [Map] with the slot's address in scope.
func MapWithPath[FA, FB, A, B any](ra Representable[FA, A], rb Representable[FB, B], m FA, f func(Path, A) B) FB {
	return rb.Tabulate(func(p Path) B {
		return f(p, ra.At(p).Get(m))
	})
}

// TryMapWithPath rebuilds the container through a fallible callback.
// Slots are visited in enumeration order; the first error aborts the
// traversal and is returned with a zero container. On success every slot
// holds its callback result.
func TryMapWithPath[FA, FB, A, B any](en Enumerable[FA, A], rb Representable[FB, B], m FA, f func(Path, A) (B, error)) (FB, error) {
	out := make(map[Path]B)
	for p, a := range en.All(m) {
		b, err := f(p, a)
		if err != nil {
			var zero FB
			return zero, err
		}
		out[p] = b
	}
	return rb.Tabulate(func(p Path) B {
		return out[p]
	}), nil
}

// TryForWithPath is [TryMapWithPath] with the callback first.
func TryForWithPath[FA, FB, A, B any](en Enumerable[FA, A], rb Representable[FB, B], f func(Path, A) (B, error), m FA) (FB, error) {
	return TryMapWithPath(en, rb, m, f)
}

// TryEachWithPath visits every slot in enumeration order and stops at the
// first error. No container is built.
func TryEachWithPath[FA, A any](en Enumerable[FA, A], m FA, f func(Path, A) error) error {
	for p, a := range en.All(m) {
		if err := f(p, a); err != nil {
			return err
		}
	}
	return nil
}

// TryForEachWithPath is [TryEachWithPath] with the callback first.
func TryForEachWithPath[FA, A any](en Enumerable[FA, A], f func(Path, A) error, m FA) error {
	return TryEachWithPath(en, m, f)
}

// EffMapWithPath rebuilds the container through an effectful callback,
// sequencing the per-slot computations with [kont.Bind] in enumeration
// order. The resulting computation yields the rebuilt container once every
// slot's computation has resumed; re-running it re-runs every slot.
func EffMapWithPath[FA, FB, A, B any](en Enumerable[FA, A], rb Representable[FB, B], m FA, f func(Path, A) kont.Eff[B]) kont.Eff[FB] {
	paths, vals := collectSlots(en, m)
	var step func(i int, acc []B) kont.Eff[FB]
	step = func(i int, acc []B) kont.Eff[FB] {
		if i == len(paths) {
			out := make(map[Path]B, len(acc))
			for j, b := range acc {
				out[paths[j]] = b
			}
			return kont.Pure(rb.Tabulate(func(p Path) B {
				return out[p]
			}))
		}
		return kont.Bind(f(paths[i], vals[i]), func(b B) kont.Eff[FB] {
			// Fresh accumulator per resumption keeps the chain
			// re-runnable.
			next := make([]B, len(acc)+1)
			copy(next, acc)
			next[len(acc)] = b
			return step(i+1, next)
		})
	}
	return step(0, nil)
}

// EffForWithPath is [EffMapWithPath] with the callback first.
func EffForWithPath[FA, FB, A, B any](en Enumerable[FA, A], rb Representable[FB, B], f func(Path, A) kont.Eff[B], m FA) kont.Eff[FB] {
	return EffMapWithPath(en, rb, m, f)
}

// EffEachWithPath sequences one effectful computation per slot in
// enumeration order, discarding the per-slot results.
func EffEachWithPath[FA, A any](en Enumerable[FA, A], m FA, f func(Path, A) kont.Eff[struct{}]) kont.Eff[struct{}] {
	paths, vals := collectSlots(en, m)
	var step func(i int) kont.Eff[struct{}]
	step = func(i int) kont.Eff[struct{}] {
		if i == len(paths) {
			return kont.Pure(struct{}{})
		}
		return kont.Bind(f(paths[i], vals[i]), func(struct{}) kont.Eff[struct{}] {
			return step(i + 1)
		})
	}
	return step(0)
}

// EffForEachWithPath is [EffEachWithPath] with the callback first.
func EffForEachWithPath[FA, A any](en Enumerable[FA, A], f func(Path, A) kont.Eff[struct{}], m FA) kont.Eff[struct{}] {
	return EffEachWithPath(en, m, f)
}
