// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rep_test

import (
	"iter"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/rep"
)

// Edge cases for coverage

// EmptyBox is the zero-slot container: Tabulate never consults choose and
// enumeration yields nothing.
type EmptyBox[A any] struct{}

type EmptyRep[A any] struct{}

func (EmptyRep[A]) Tabulate(func(rep.Path) A) EmptyBox[A] {
	return EmptyBox[A]{}
}

func (EmptyRep[A]) At(rep.Path) rep.Lens[EmptyBox[A], A] {
	panic("empty box has no slots")
}

func (EmptyRep[A]) All(EmptyBox[A]) iter.Seq2[rep.Path, A] {
	return func(func(rep.Path, A) bool) {}
}

func TestEmptyContainerMap(t *testing.T) {
	calls := 0
	got := rep.Map(EmptyRep[int]{}, EmptyRep[string]{}, EmptyBox[int]{}, func(int) string {
		calls++
		return ""
	})
	if got != (EmptyBox[string]{}) {
		t.Fatalf("got %+v", got)
	}
	if calls != 0 {
		t.Fatalf("callback ran %d times over the empty shape", calls)
	}
}

func TestEmptyContainerTryMap(t *testing.T) {
	got, err := rep.TryMapWithPath(EmptyRep[int]{}, EmptyRep[int]{}, EmptyBox[int]{}, func(rep.Path, int) (int, error) {
		t.Fatal("callback should not run")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (EmptyBox[int]{}) {
		t.Fatalf("got %+v", got)
	}
}

func TestEmptyContainerEffMap(t *testing.T) {
	eff := rep.EffMapWithPath(EmptyRep[int]{}, EmptyRep[int]{}, EmptyBox[int]{}, func(rep.Path, int) kont.Eff[int] {
		t.Fatal("callback should not run")
		return kont.Pure(0)
	})
	got := kont.Handle(eff, kont.HandleFunc[EmptyBox[int]](func(op kont.Operation) (kont.Resumed, bool) {
		panic("no effects expected")
	}))
	if got != (EmptyBox[int]{}) {
		t.Fatalf("got %+v", got)
	}
}

func TestEmptyContainerEffEachNoEffects(t *testing.T) {
	eff := rep.EffEachWithPath(EmptyRep[int]{}, EmptyBox[int]{}, func(rep.Path, int) kont.Eff[struct{}] {
		t.Fatal("callback should not run")
		return kont.Pure(struct{}{})
	})
	logs := kont.ExecWriter[string, struct{}](eff)
	if len(logs) != 0 {
		t.Fatalf("got logs %v, want none", logs)
	}
}

func TestEmptyContainerFolds(t *testing.T) {
	if got := rep.FoldMapWithPath(EmptyRep[int]{}, rep.SumMonoid[int](), EmptyBox[int]{}, func(_ rep.Path, v int) int {
		return v
	}); got != 0 {
		t.Fatalf("FoldMap over empty: got %d, want 0", got)
	}
	if got := rep.FoldrWithPath(EmptyRep[int]{}, EmptyBox[int]{}, "seed", func(_ rep.Path, _ int, acc string) string {
		return acc + "!"
	}); got != "seed" {
		t.Fatalf("Foldr over empty: got %q, want seed", got)
	}
}

func TestEmptyContainerPathsOf(t *testing.T) {
	got := rep.PathsOf(EmptyRep[rep.Path]{})
	if got != (EmptyBox[rep.Path]{}) {
		t.Fatalf("got %+v", got)
	}
}

// =============================================================================
// Coverage: zero container returned alongside a traversal error
// =============================================================================

func TestTryMapZeroResultOnError(t *testing.T) {
	got, err := rep.TryMapWithPath(PairRep[int]{}, PairRep[int]{}, Pair[int]{X: 1, Y: 2}, func(rep.Path, int) (int, error) {
		return 0, errTraversal
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if got != (Pair[int]{}) {
		t.Fatalf("got %+v, want zero pair", got)
	}
}

var errTraversal = errFixed("traversal failed")

type errFixed string

func (e errFixed) Error() string { return string(e) }

// =============================================================================
// Coverage: Func instance degenerate universes
// =============================================================================

func TestFuncRepNoKeys(t *testing.T) {
	r := rep.FuncRep[string, int]{}
	fn := r.Tabulate(func(rep.Path) int {
		t.Fatal("choose should not run")
		return 0
	})
	if got := fn("anything"); got != 0 {
		t.Fatalf("got %d, want zero value", got)
	}
	for range r.All(fn) {
		t.Fatal("nothing to enumerate")
	}
}

func TestPureOverFunc(t *testing.T) {
	r := rep.FuncRep[string, int]{Keys: []string{"a", "b"}}
	fn := rep.Pure(r, 5)
	if fn("a") != 5 || fn("b") != 5 {
		t.Fatalf("got %d/%d, want 5/5", fn("a"), fn("b"))
	}
}

// =============================================================================
// Coverage: Distribute with a non-effect outer functor
// =============================================================================

func TestDistributeIdentityOuter(t *testing.T) {
	// w = Identity: distributing is repackaging each slot.
	wfa := rep.Identity[Pair[int]]{Value: Pair[int]{X: 1, Y: 2}}
	got := rep.Distribute(PairRep[int]{}, PairRep[rep.Identity[int]]{}, wfa,
		func(w rep.Identity[Pair[int]], f func(Pair[int]) int) rep.Identity[int] {
			return rep.Identity[int]{Value: f(w.Value)}
		})
	if got.X.Value != 1 || got.Y.Value != 2 {
		t.Fatalf("got %+v", got)
	}
}
