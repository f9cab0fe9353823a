// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep

// Slot addressing.
// A Path names one slot of a container independently of the element type:
// the same Path addresses the int slot of Pair[int] and the string slot of
// Pair[string] as long as both sit at the same position. Instances choose
// their own key type; a struct-shaped container typically uses a small
// enum, a function-shaped container uses its argument type.

// Path is the address of one container slot. Paths are comparable and can
// key maps. Two Paths are equal exactly when they carry equal keys of the
// same type.
type Path struct {
	key any
}

// PathOf wraps an instance-chosen key into a Path.
func PathOf[K comparable](k K) Path {
	return Path{key: k}
}

// Key recovers the typed key carried by p.
// It panics when p was built from a different key type.
func Key[K comparable](p Path) K {
	k, ok := p.key.(K)
	if !ok {
		panic("rep: path key type mismatch")
	}
	return k
}

func samePath(p Path) Path { return p }

// PathsOf builds the container whose every slot holds its own address.
// The result is the container-shaped table of the instance's Paths; it
// depends only on the shape, never on any container value.
func PathsOf[FP any](rp Representable[FP, Path]) FP {
	return rp.Tabulate(samePath)
}

// Tabulated is the isomorphism between a container and its lookup
// function. The forward direction reads slots through [Representable.At];
// the reverse direction rebuilds the container with
// [Representable.Tabulate]. Fidelity of the instance makes the two
// directions mutually inverse on addressed Paths.
func Tabulated[FA, A any](r Representable[FA, A]) Iso[FA, func(Path) A] {
	return Iso[FA, func(Path) A]{
		get: func(fa FA) func(Path) A {
			return func(p Path) A {
				return r.At(p).Get(fa)
			}
		},
		reverseGet: func(choose func(Path) A) FA {
			return r.Tabulate(choose)
		},
	}
}
