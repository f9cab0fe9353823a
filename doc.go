// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rep derives container algorithms from a per-slot accessor
// contract.
//
// A representable container is a type whose shape is fixed at compile
// time: every value exposes the same slots, each addressed by a [Path].
// A type joins the family by providing a [Representable] witness — build
// a container by filling every slot ([Representable.Tabulate]), read or
// replace one slot through a [Lens] ([Representable.At]) — and the
// package derives map, applicative combination, bind, distribution,
// traversal, and folding once for all conforming types.
//
// # Representability Contract
//
// Witnesses are small stateless values passed explicitly to the generic
// operations:
//
//   - [Representable]: Tabulate (fill every slot) + At (resolve a slot's lens)
//   - [Enumerable]: All (visit slots in the instance's stable order)
//
// Lawful instances satisfy two laws the package relies on but cannot
// enforce:
//
//   - determinism: the slot set depends only on the container type
//   - fidelity: At(p).Get(Tabulate(choose)) == choose(p) for every slot p
//
// A witness that breaks them produces silently wrong containers, not
// panics: operations taking several witnesses assume all of them describe
// the same shape family.
//
// # Slot Addressing
//
// A [Path] names a slot independently of the element type, so one Path
// resolves against any instantiation of the same shape. Instances choose
// a comparable key type; [Key] panics with a "rep: "-prefixed message on
// key-type misuse.
//
//   - [PathOf]: wrap an instance key into a Path
//   - [Key]: recover the typed key
//   - [PathsOf]: the container holding its own slot addresses
//   - [Tabulated]: the container ≅ lookup-function isomorphism
//
// # Accessors
//
//   - [Lens]: one-slot read/replace pair, created with [NewLens]
//   - [Lens.Get], [Lens.Set], [Lens.Modify]: pure access
//   - [Lens.TryModify]: fallible update, structure unchanged on error
//   - [Update]: effectful slot update across [kont.Eff]
//   - [Compose]: focus deeper; [IdentityLens] is its neutral element
//   - [Iso], [NewIso]: bidirectional conversion, reversible with [Iso.Reverse]
//
// # Derived Algorithms
//
//   - [Map]: pointwise transform, shape preserved
//   - [Pure]: every slot holds one value
//   - [Ap]: slot-wise function application
//   - [Bind]: slot-local bind; lawful for product shapes
//   - [Distribute]: transpose an effect around the container, given the
//     effect's functorial map
//   - [DistributeEff]: [Distribute] specialized to [kont.Eff]
//
// # Position-Aware Traversals
//
// Traversal callbacks receive each slot's Path alongside its value. The
// variant grid combines an effect flavor with an argument order:
//
//   - Try: callbacks return (B, error); slots visited in enumeration
//     order, first error wins (fail-fast)
//   - Eff: callbacks return [kont.Eff]; slots sequenced with [kont.Bind],
//     later slots observe earlier effects
//   - For: callback argument first
//   - Each: effect only, no rebuilt container
//
// Variants: [MapWithPath], [TryMapWithPath], [TryForWithPath],
// [TryEachWithPath], [TryForEachWithPath], [EffMapWithPath],
// [EffForWithPath], [EffEachWithPath], [EffForEachWithPath].
//
// # Folds
//
//   - [Monoid]: associative combine with identity
//   - [SliceMonoid]: concatenation; [SumMonoid]: numeric addition
//   - [FoldMapWithPath]: map slots into a monoid, combine in order
//   - [FoldrWithPath]: right fold with explicit seed
//
// # Instances
//
//   - [Identity] with [IdentityRep]: the one-slot container
//   - [Func] with [FuncRep]: a total function over a finite key universe,
//     one slot per key
//
// Container authors add their own instances by implementing the two
// witness interfaces; the package's generic operations pick them up with
// no further registration.
//
// # Example
//
//	type Point struct{ X, Y int }
//
//	type axis int
//
//	const (
//		axisX axis = iota
//		axisY
//	)
//
//	type PointRep struct{}
//
//	func (PointRep) Tabulate(choose func(rep.Path) int) Point {
//		return Point{X: choose(rep.PathOf(axisX)), Y: choose(rep.PathOf(axisY))}
//	}
//
//	func (PointRep) At(p rep.Path) rep.Lens[Point, int] {
//		if rep.Key[axis](p) == axisY {
//			return rep.NewLens(
//				func(pt Point) int { return pt.Y },
//				func(pt Point, v int) Point { pt.Y = v; return pt },
//			)
//		}
//		return rep.NewLens(
//			func(pt Point) int { return pt.X },
//			func(pt Point, v int) Point { pt.X = v; return pt },
//		)
//	}
//
//	moved := rep.Map(PointRep{}, PointRep{}, Point{X: 1, Y: 2}, func(v int) int {
//		return v * 10
//	})
//	// moved == Point{X: 10, Y: 20}
package rep
