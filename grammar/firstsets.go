package grammar

import "ccparse/util"

// FirstSets computes, for every nonterminal in g, the set of terminal
// symbols that can begin a string derived from it. It assumes the grammar
// has no nullable nonterminal (true of every production this package
// describes), matching the assumption the teacher's original LALR table
// builder made for the same reason.
//
// The algorithm is a worklist over each nonterminal's alternatives: the
// first symbol of each alternative either contributes a terminal directly
// or, if it is a nonterminal, defers to that nonterminal's own first set,
// which is itself resolved by the same worklist (memoized as soon as it is
// fully computed).
func FirstSets(g *Grammar) map[string]*util.Set[string] {
	prods := make(map[string][]*Production)
	for _, p := range g.Productions {
		prods[p.From] = append(prods[p.From], p)
	}

	firsts := make(map[string]*util.Set[string])
	for _, nt := range g.Nonterminals {
		firsts[nt] = firstSetOf(nt, prods, firsts)
	}
	return firsts
}

func firstSetOf(nt string, prods map[string][]*Production, memo map[string]*util.Set[string]) *util.Set[string] {
	if s, ok := memo[nt]; ok && s.Size() > 0 {
		return s
	}

	result := util.NewSet[string]()
	seen := util.SetOf(nt)
	queue := util.NewQueue[string]()
	queue.Push(nt)

	visit := func(prod *Production) {
		if len(prod.To) == 0 {
			return
		}
		head := prod.To[0]
		if head.T == TERMINAL {
			result.Add(head.Val)
		} else if !seen.Has(head.Val) {
			seen.Add(head.Val)
			queue.Push(head.Val)
		}
	}

	for queue.Size() > 0 {
		cur := queue.Pop()
		for _, prod := range prods[cur] {
			visit(prod)
		}
	}
	return result
}

// StartsWith reports whether terminal can be the first token of a string
// derived from nonterminal nt in g's FIRST sets.
func StartsWith(firsts map[string]*util.Set[string], nt, terminal string) bool {
	s, ok := firsts[nt]
	return ok && s.Has(terminal)
}
