package query

// Rule rewrites a single node. It returns the replacement and reports whether
// it fired; a rule that does not fire must return its input unchanged. Rules
// must strictly shrink some well-founded measure of the subtree they rewrite
// (node count or depth), which is what bounds the fixpoint loops below.
type Rule[E any] func(Query[E]) (Query[E], bool)

// RewriteBottomUp applies rule exhaustively, bottom up: children are rewritten
// before their parent, the rule is re-applied at each node until it no longer
// fires there, and whole-tree passes repeat until a pass changes nothing.
func RewriteBottomUp[E any](q Query[E], rule Rule[E]) Query[E] {
	for {
		next, changed := bottomUpPass(q, rule)
		q = next
		if !changed {
			return q
		}
	}
}

func bottomUpPass[E any](q Query[E], rule Rule[E]) (Query[E], bool) {
	changed := false
	switch n := q.(type) {
	case And[E]:
		left, cl := bottomUpPass(n.Left, rule)
		right, cr := bottomUpPass(n.Right, rule)
		changed = cl || cr
		q = And[E]{Left: left, Right: right}
	case Or[E]:
		left, cl := bottomUpPass(n.Left, rule)
		right, cr := bottomUpPass(n.Right, rule)
		changed = cl || cr
		q = Or[E]{Left: left, Right: right}
	case AndNot[E]:
		left, cl := bottomUpPass(n.Left, rule)
		right, cr := bottomUpPass(n.Right, rule)
		changed = cl || cr
		q = AndNot[E]{Left: left, Right: right}
	case Score[E]:
		sub, c := bottomUpPass(n.Sub, rule)
		changed = c
		q = Score[E]{Sub: sub, Factor: n.Factor}
	case Neg[E]:
		sub, c := bottomUpPass(n.Sub, rule)
		changed = c
		q = Neg[E]{Sub: sub}
	case Params[E]:
		sub, c := bottomUpPass(n.Sub, rule)
		changed = c
		q = Params[E]{Params: n.Params, Sub: sub}
	}
	for {
		next, fired := rule(q)
		if !fired {
			break
		}
		q = next
		changed = true
	}
	return q, changed
}

// RewriteTopDown applies rule to a fixpoint, top down: the rule is re-applied
// at the root until it no longer fires there, then the traversal recurses into
// the children, and whole-tree passes repeat until a pass changes nothing.
// Unlike RewriteBottomUp, a node rewritten by the rule is immediately
// re-examined before any of its children are.
func RewriteTopDown[E any](q Query[E], rule Rule[E]) Query[E] {
	for {
		next, changed := topDownPass(q, rule)
		q = next
		if !changed {
			return q
		}
	}
}

func topDownPass[E any](q Query[E], rule Rule[E]) (Query[E], bool) {
	changed := false
	for {
		next, fired := rule(q)
		if !fired {
			break
		}
		q = next
		changed = true
	}
	switch n := q.(type) {
	case And[E]:
		left, cl := topDownPass(n.Left, rule)
		right, cr := topDownPass(n.Right, rule)
		if cl || cr {
			changed = true
			q = And[E]{Left: left, Right: right}
		}
	case Or[E]:
		left, cl := topDownPass(n.Left, rule)
		right, cr := topDownPass(n.Right, rule)
		if cl || cr {
			changed = true
			q = Or[E]{Left: left, Right: right}
		}
	case AndNot[E]:
		left, cl := topDownPass(n.Left, rule)
		right, cr := topDownPass(n.Right, rule)
		if cl || cr {
			changed = true
			q = AndNot[E]{Left: left, Right: right}
		}
	case Score[E]:
		sub, c := topDownPass(n.Sub, rule)
		if c {
			changed = true
			q = Score[E]{Sub: sub, Factor: n.Factor}
		}
	case Neg[E]:
		sub, c := topDownPass(n.Sub, rule)
		if c {
			changed = true
			q = Neg[E]{Sub: sub}
		}
	case Params[E]:
		sub, c := topDownPass(n.Sub, rule)
		if c {
			changed = true
			q = Params[E]{Params: n.Params, Sub: sub}
		}
	}
	return q, changed
}
