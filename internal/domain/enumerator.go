// Package domain implements the enumeration of cyclic group actions on curves.
package domain

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/cyclact/internal/arith"
	m "github.com/mouse-blink/cyclact/internal/model"
)

// sphereOrderBound is the largest group order among the spherical triangle
// signatures (2,3,3), (2,3,4), (2,3,5).
const sphereOrderBound = 60

// Enumerator derives the finite set of candidate group orders for a query.
type Enumerator interface {
	Enumerate(query m.Query) (m.Plan, error)
}

type enumerator struct {
	log *logrus.Logger
}

// NewEnumerator constructs an Enumerator. A nil logger discards output.
func NewEnumerator(log *logrus.Logger) Enumerator {
	return &enumerator{log: orDiscard(log)}
}

func (e *enumerator) Enumerate(query m.Query) (m.Plan, error) {
	query, err := NormalizeQuery(query)
	if err != nil {
		return m.Plan{}, err
	}

	step := arith.LCM(query.Known.Orders()...)

	plan := m.Plan{Query: query, Lower: step}

	var orders []int

	if len(query.Orders) > 0 {
		orders = query.Orders
		plan.Lower = orders[0]
		plan.Upper = orders[len(orders)-1]
	} else {
		if len(query.Known) == 0 && query.Genus <= 1 {
			return m.Plan{}, fmt.Errorf("%w: genus %d without ramification data admits actions of every order; "+
				"give known points or explicit orders", ErrUnboundedInput, query.Genus)
		}

		plan.Upper = upperBound(query, step)
		for n := step; n <= plan.Upper; n += step {
			orders = append(orders, n)
		}
	}

	known := knownContribution(query.Known)

	for _, n := range orders {
		maxQuotientGenus := maxQuotientGenus(query.Genus, n, known(n))
		if maxQuotientGenus < 0 {
			continue
		}

		plan.Candidates = append(plan.Candidates, m.Candidate{Order: n, MaxQuotientGenus: maxQuotientGenus})
	}

	e.log.WithFields(logrus.Fields{
		"genus":      query.Genus,
		"known":      query.Known.String(),
		"lower":      plan.Lower,
		"upper":      plan.Upper,
		"candidates": len(plan.Candidates),
	}).Debug("enumerated candidate orders")

	return plan, nil
}

// NormalizeQuery validates a query, sorts its known points and orders and
// fills in the default relabeling policy.
func NormalizeQuery(query m.Query) (m.Query, error) {
	if query.Genus < 0 {
		return m.Query{}, fmt.Errorf("%w: genus %d is negative", ErrInvalidInput, query.Genus)
	}

	switch query.Policy {
	case "":
		query.Policy = m.RelabelFree
	case m.RelabelFree, m.RelabelFixed:
	default:
		return m.Query{}, fmt.Errorf("%w: unknown relabel policy %q", ErrInvalidInput, query.Policy)
	}

	for _, p := range query.Known {
		if err := validatePoint(p); err != nil {
			return m.Query{}, err
		}
	}

	query.Known = query.Known.Sorted()

	if len(query.Orders) == 0 {
		query.Orders = nil
		return query, nil
	}

	seen := make(map[int]bool, len(query.Orders))
	orders := make([]int, 0, len(query.Orders))

	for _, n := range query.Orders {
		if n <= 0 {
			return m.Query{}, fmt.Errorf("%w: group order %d is not positive", ErrInvalidInput, n)
		}

		for _, p := range query.Known {
			if n%p.Order != 0 {
				return m.Query{}, fmt.Errorf("%w: stabilizer order %d does not divide group order %d",
					ErrInvalidInput, p.Order, n)
			}
		}

		if !seen[n] {
			seen[n] = true

			orders = append(orders, n)
		}
	}

	sort.Ints(orders)
	query.Orders = orders

	return query, nil
}

func validatePoint(p m.Point) error {
	if p.Order < 2 {
		return fmt.Errorf("%w: point %s: stabilizer order must be at least 2", ErrInvalidInput, p)
	}

	if p.Rotation < 1 || p.Rotation >= p.Order {
		return fmt.Errorf("%w: point %s: rotation index must lie in [1, %d]", ErrInvalidInput, p, p.Order-1)
	}

	if arith.GCD(p.Rotation, p.Order) != 1 {
		return fmt.Errorf("%w: point %s: rotation index is not coprime to %d", ErrInvalidInput, p, p.Order)
	}

	return nil
}

// upperBound bounds the group order of any signature containing the known
// points. For g >= 1 it is Wiman's bound 4g+2. On the sphere, signatures with
// n > 60 are either (n; n, n), which forces n to equal a known order, or
// (n; 2, 2, n/2), which admits no rotation data. Known points sharpen the
// bound through n·(Σ(1-1/d) - 2) <= 2g-2.
func upperBound(query m.Query, lcm int) int {
	upper := 4*query.Genus + 2

	if query.Genus == 0 {
		upper = sphereOrderBound
		for _, p := range query.Known {
			upper = max(upper, p.Order)
		}
	}

	// A = S/lcm with S = Σ (lcm - lcm/d)
	s := 0
	for _, p := range query.Known {
		s += lcm - lcm/p.Order
	}

	if den := s - 2*lcm; den > 0 {
		num := (2*query.Genus - 2) * lcm
		if num < 0 {
			return 0
		}

		upper = min(upper, num/den)
	}

	return upper
}

// knownContribution returns the Riemann–Hurwitz contribution of the known
// points for a given group order.
func knownContribution(known m.Points) func(n int) int {
	return func(n int) int {
		return m.Signature{Order: n, Points: known}.Contribution()
	}
}

// maxQuotientGenus is the largest g' with 2g-2 - n(2g'-2) - known >= 0, or -1.
func maxQuotientGenus(genus, n, known int) int {
	slack := 2*genus - 2 + 2*n - known
	if slack < 0 {
		return -1
	}

	return slack / (2 * n)
}

func orDiscard(log *logrus.Logger) *logrus.Logger {
	if log != nil {
		return log
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return discard
}
