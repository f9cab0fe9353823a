// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep

import "iter"

// Container contract.
// A representable container has a shape fixed by its type: every value of
// the container type exposes exactly the same set of slots, each addressed
// by a [Path]. Filling every slot builds a container; reading a slot uses
// the [Lens] resolved from its Path. The derived operations in this
// package ([Map], [Pure], [Ap], [Bind], [Distribute], the traversal and
// fold families) are written once against these two interfaces and work
// for any conforming instance.

// Representable witnesses that FA is a container of A slots whose shape is
// fixed by the type alone. Implementations are small stateless values,
// typically an empty struct, passed explicitly to the generic operations.
//
// Lawful instances satisfy, for every choose func and every Path p the
// instance addresses:
//
//   - fidelity: w.At(p).Get(w.Tabulate(choose)) ≡ choose(p)
//   - determinism: the set of addressed Paths never depends on the
//     container value, only on the container type
//
// Tabulate must invoke choose exactly once per addressed Path; choose may
// capture state and observe its own call count.
type Representable[FA, A any] interface {
	// Tabulate builds a container by asking choose for the value of
	// every slot.
	Tabulate(choose func(Path) A) FA
	// At resolves a slot address to the lens focusing that slot.
	// At panics with a "rep: "-prefixed message when p carries a key
	// the instance cannot address, such as a key of a foreign type.
	At(p Path) Lens[FA, A]
}

// Enumerable witnesses that the slots of FA can be visited in a stable
// order. The order is part of the instance contract: two enumerations of
// any two values of the same container type yield the same Path sequence.
// Position-aware traversals and folds consume containers through this
// interface.
type Enumerable[FA, A any] interface {
	// All ranges over every slot in the instance's canonical order,
	// yielding each slot's Path and current value.
	All(fa FA) iter.Seq2[Path, A]
}

// collectSlots drains an enumeration into parallel path and value slices,
// preserving the enumeration order.
func collectSlots[FA, A any](en Enumerable[FA, A], fa FA) ([]Path, []A) {
	var paths []Path
	var vals []A
	for p, a := range en.All(fa) {
		paths = append(paths, p)
		vals = append(vals, a)
	}
	return paths, vals
}
