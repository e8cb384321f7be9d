package domain

import (
	"github.com/mouse-blink/cyclact/internal/arith"
	m "github.com/mouse-blink/cyclact/internal/model"
)

// Searcher finds every signature of a fixed group order that completes the
// known ramification data of a query.
type Searcher interface {
	Search(query m.Query, candidate m.Candidate) []m.Signature
}

type searcher struct{}

// NewSearcher constructs a Searcher.
func NewSearcher() Searcher {
	return &searcher{}
}

// branch describes one admissible stabilizer order for the extra points of a
// fixed group order n.
type branch struct {
	order        int
	contribution int   // n/d·(d-1), strictly increasing with d
	units        []int // admissible rotation indices
	monodromy    []int // (n/d)·r⁻¹ mod n for each entry of units
}

func (s *searcher) Search(query m.Query, candidate m.Candidate) []m.Signature {
	n := candidate.Order
	if n < 1 {
		return nil
	}

	seed := m.Signature{Order: n, Points: query.Known}
	if !seed.IsConsistentWith(query.Known, m.RelabelFixed) {
		return nil
	}

	knownSum := seed.RotationSum()
	if knownSum < 0 {
		return nil
	}

	branches := branchesFor(n)
	known := seed.Contribution()

	var found []m.Signature

	for quotientGenus := 0; quotientGenus <= candidate.MaxQuotientGenus; quotientGenus++ {
		target := 2*query.Genus - 2 - n*(2*quotientGenus-2) - known
		if target < 0 {
			break
		}

		forEachOrderMultiset(branches, target, func(picked []int) {
			forEachRotation(branches, picked, knownSum, n, func(extra m.Points) {
				points := make(m.Points, 0, len(query.Known)+len(extra))
				points = append(points, query.Known...)
				points = append(points, extra...)

				found = append(found, m.Signature{
					Order:         n,
					QuotientGenus: quotientGenus,
					Points:        points.Sorted(),
				})
			})
		})
	}

	return found
}

func branchesFor(n int) []branch {
	orders := arith.StabilizerOrders(n)
	branches := make([]branch, 0, len(orders))

	for _, d := range orders {
		b := branch{order: d, contribution: n / d * (d - 1), units: arith.Units(d)}
		b.monodromy = make([]int, len(b.units))

		for i, r := range b.units {
			inv, _ := arith.ModInverse(r, d)
			b.monodromy[i] = n / d * inv
		}

		branches = append(branches, b)
	}

	return branches
}

// forEachOrderMultiset calls emit with every non-decreasing sequence of branch
// indices whose contributions sum to target. The walk uses an explicit stack;
// a frame is abandoned as soon as the next contribution exceeds its residual,
// so the depth never exceeds target / branches[0].contribution.
func forEachOrderMultiset(branches []branch, target int, emit func(picked []int)) {
	type frame struct {
		next     int
		residual int
	}

	stack := []frame{{next: 0, residual: target}}
	picked := make([]int, 0)

	pop := func() {
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			picked = picked[:len(stack)-1]
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.residual == 0 {
			emit(picked)
			pop()

			continue
		}

		if top.next >= len(branches) || branches[top.next].contribution > top.residual {
			pop()
			continue
		}

		i := top.next
		top.next++

		picked = append(picked, i)
		stack = append(stack, frame{next: i, residual: top.residual - branches[i].contribution})
	}
}

// forEachRotation assigns rotation indices to the picked stabilizer orders,
// non-decreasing among equal orders, and emits the assignments whose total
// monodromy together with knownSum vanishes modulo n.
func forEachRotation(branches []branch, picked []int, knownSum, n int, emit func(m.Points)) {
	k := len(picked)
	idx := make([]int, k)

	for {
		sum := knownSum
		for j, b := range picked {
			sum += branches[b].monodromy[idx[j]]
		}

		if sum%n == 0 {
			extra := make(m.Points, k)
			for j, b := range picked {
				extra[j] = m.Point{Order: branches[b].order, Rotation: branches[b].units[idx[j]]}
			}

			emit(extra)
		}

		j := k - 1
		for ; j >= 0; j-- {
			if idx[j]+1 < len(branches[picked[j]].units) {
				break
			}
		}

		if j < 0 {
			return
		}

		idx[j]++

		for t := j + 1; t < k; t++ {
			if picked[t] == picked[t-1] {
				idx[t] = idx[t-1]
			} else {
				idx[t] = 0
			}
		}
	}
}
