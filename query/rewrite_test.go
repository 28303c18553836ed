package query

import (
	"reflect"
	"testing"
)

func leaf(s string) Query[string] { return Default[string]{Expr: s} }

func TestRewriteBottomUp(t *testing.T) {
	collapseSelfAnd := func(q Query[string]) (Query[string], bool) {
		n, ok := q.(And[string])
		if !ok {
			return q, false
		}
		if !reflect.DeepEqual(n.Left, n.Right) {
			return q, false
		}
		return n.Left, true
	}

	t.Run("ChildrenBeforeParent", func(t *testing.T) {
		a := leaf("a")
		tree := And[string]{
			Left:  And[string]{Left: a, Right: a},
			Right: And[string]{Left: a, Right: a},
		}
		got := RewriteBottomUp[string](tree, collapseSelfAnd)
		if !reflect.DeepEqual(got, a) {
			t.Fatalf("RewriteBottomUp() = %#v, want %#v", got, a)
		}
	})

	t.Run("ReappliedAtNode", func(t *testing.T) {
		dropNeg := func(q Query[string]) (Query[string], bool) {
			n, ok := q.(Neg[string])
			if !ok {
				return q, false
			}
			inner, ok := n.Sub.(Neg[string])
			if !ok {
				return q, false
			}
			return inner.Sub, true
		}
		tree := Query[string](leaf("a"))
		for i := 0; i < 5; i++ {
			tree = Neg[string]{Sub: tree}
		}
		want := Neg[string]{Sub: leaf("a")}
		if got := RewriteBottomUp[string](tree, dropNeg); !reflect.DeepEqual(got, want) {
			t.Fatalf("RewriteBottomUp() = %#v, want %#v", got, want)
		}
	})

	t.Run("NoMatchLeavesTreeAlone", func(t *testing.T) {
		tree := Or[string]{Left: leaf("a"), Right: Neg[string]{Sub: leaf("b")}}
		if got := RewriteBottomUp[string](tree, collapseSelfAnd); !reflect.DeepEqual(got, tree) {
			t.Fatalf("RewriteBottomUp() = %#v, want input unchanged", got)
		}
	})
}

func TestRewriteTopDown(t *testing.T) {
	mergeScores := func(q Query[string]) (Query[string], bool) {
		outer, ok := q.(Score[string])
		if !ok {
			return q, false
		}
		inner, ok := outer.Sub.(Score[string])
		if !ok {
			return q, false
		}
		return Score[string]{Sub: inner.Sub, Factor: outer.Factor + inner.Factor}, true
	}

	t.Run("RewrittenNodeReexamined", func(t *testing.T) {
		tree := Score[string]{Factor: 4, Sub: Score[string]{Factor: 2, Sub: Score[string]{Factor: 1, Sub: leaf("a")}}}
		want := Score[string]{Sub: leaf("a"), Factor: 7}
		if got := RewriteTopDown[string](tree, mergeScores); !reflect.DeepEqual(got, want) {
			t.Fatalf("RewriteTopDown() = %#v, want %#v", got, want)
		}
	})

	t.Run("NonMatchingNodeDoesNotBlockDescent", func(t *testing.T) {
		tree := Score[string]{Factor: 4, Sub: Neg[string]{Sub: Score[string]{Factor: 2, Sub: Score[string]{Factor: 1, Sub: leaf("a")}}}}
		want := Score[string]{Factor: 4, Sub: Neg[string]{Sub: Score[string]{Factor: 3, Sub: leaf("a")}}}
		if got := RewriteTopDown[string](tree, mergeScores); !reflect.DeepEqual(got, want) {
			t.Fatalf("RewriteTopDown() = %#v, want %#v", got, want)
		}
	})
}

func TestMapExprs(t *testing.T) {
	t.Run("RebuildsEveryLeaf", func(t *testing.T) {
		tree := And[string]{
			Left:  Field[string]{Name: "f", Expr: "abc"},
			Right: Params[string]{Params: []Param{CacheParam(true)}, Sub: Neg[string]{Sub: leaf("de")}},
		}
		got, ok := MapExprs(tree, func(s string) (int, bool) { return len(s), true })
		if !ok {
			t.Fatal("MapExprs() reported failure on a total mapping")
		}
		want := And[int]{
			Left:  Field[int]{Name: "f", Expr: 3},
			Right: Params[int]{Params: []Param{CacheParam(true)}, Sub: Neg[int]{Sub: Default[int]{Expr: 2}}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("MapExprs() = %#v, want %#v", got, want)
		}
	})

	t.Run("FailurePropagates", func(t *testing.T) {
		tree := Or[string]{Left: leaf("ok"), Right: Score[string]{Sub: leaf("bad"), Factor: 2}}
		_, ok := MapExprs(tree, func(s string) (int, bool) { return 0, s != "bad" })
		if ok {
			t.Fatal("MapExprs() should fail when the mapping fails on any leaf")
		}
	})
}
