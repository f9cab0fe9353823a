// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep

import "code.hybscloud.com/kont"

// Derived algorithms.
// Every operation here is written against [Representable] alone: build with
// Tabulate, read with At. Operations that touch several instantiations of
// the same container type take one witness per instantiation; callers must
// pass witnesses of the same shape family, or the result is silently wrong
// (the witnesses cannot check each other).

// Map builds the container whose slot at p holds f of m's slot at p.
// The shape is preserved; no slot is added, dropped, or reordered.
func Map[FA, FB, A, B any](ra Representable[FA, A], rb Representable[FB, B], m FA, f func(A) B) FB {
	return rb.Tabulate(func(p Path) B {
		return f(ra.At(p).Get(m))
	})
}

// Pure builds the container holding a in every slot.
func Pure[FA, A any](r Representable[FA, A], a A) FA {
	return r.Tabulate(func(Path) A {
		return a
	})
}

// Ap applies a container of functions to a container of arguments,
// slot-wise: the result's slot at p holds mf's function at p applied to
// ma's value at p.
func Ap[FF, FA, FB, A, B any](rf Representable[FF, func(A) B], ra Representable[FA, A], rb Representable[FB, B], mf FF, ma FA) FB {
	return rb.Tabulate(func(p Path) B {
		return rf.At(p).Get(mf)(ra.At(p).Get(ma))
	})
}

// Bind builds the container whose slot at p holds slot p of f applied to
// m's slot at p. Each slot consults only the matching slot of its own
// intermediate container, so unlike list- or option-shaped binds the shape
// never changes. Bind satisfies the monad laws for product shapes such as
// [Identity], [Func], and fixed-field records; for instances whose slots
// are not independent it degrades to a slot-wise convenience.
func Bind[FA, FB, A, B any](ra Representable[FA, A], rb Representable[FB, B], m FA, f func(A) FB) FB {
	return rb.Tabulate(func(p Path) B {
		return rb.At(p).Get(f(ra.At(p).Get(m)))
	})
}

// Distribute transposes an effect around a container: given w(FA), it
// builds the container of w(A) whose slot at p maps w's contents to their
// slot at p. The effect type w enters through mapW, its functorial map
// specialized to the two element types; lawful mapW applies its function
// without re-running or reordering w's structure.
//
// Type parameters, spelled out: WF = w(FA), FW = the container of WA,
// WA = w(A).
func Distribute[WF, FW, FA, WA, A any](ra Representable[FA, A], rw Representable[FW, WA], wfa WF, mapW func(WF, func(FA) A) WA) FW {
	return rw.Tabulate(func(p Path) WA {
		return mapW(wfa, func(fa FA) A {
			return ra.At(p).Get(fa)
		})
	})
}

// DistributeEff is [Distribute] with kont's effect functor as w: an
// effectful computation of a whole container becomes a container of
// per-slot computations, each reading its own slot of the eventual result.
// Running every slot's effect re-runs m once per slot; callers that need m
// evaluated once should bind it first.
func DistributeEff[FA, FE, A any](ra Representable[FA, A], re Representable[FE, kont.Eff[A]], m kont.Eff[FA]) FE {
	return Distribute(ra, re, m, func(w kont.Eff[FA], f func(FA) A) kont.Eff[A] {
		return kont.Map(w, f)
	})
}
