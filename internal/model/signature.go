package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mouse-blink/cyclact/internal/arith"
)

// RelabelPolicy decides whether rotation indices are meaningful on their own
// or only up to a change of generator of the cyclic group.
type RelabelPolicy string

const (
	// RelabelFree identifies signatures related by σ ↦ σ^k for k a unit mod n.
	RelabelFree RelabelPolicy = "free"
	// RelabelFixed treats the generator as given; rotation indices compare literally.
	RelabelFixed RelabelPolicy = "fixed"
)

// Signature describes a candidate action of Z/n on a curve: the group order,
// the genus of the quotient curve and the ramification points.
type Signature struct {
	Order         int    `yaml:"order"`
	QuotientGenus int    `yaml:"quotient_genus"`
	Points        Points `yaml:"points"`
}

// Contribution returns the ramification term Σ n/d·(d-1) of the
// Riemann–Hurwitz formula.
func (s Signature) Contribution() int {
	total := 0
	for _, p := range s.Points {
		total += s.Order / p.Order * (p.Order - 1)
	}

	return total
}

// SatisfiesRiemannHurwitz reports whether 2g-2 = n(2g'-2) + Σ n/d·(d-1).
func (s Signature) SatisfiesRiemannHurwitz(genus int) bool {
	return 2*genus-2 == s.Order*(2*s.QuotientGenus-2)+s.Contribution()
}

// DividesOrder reports whether every stabilizer order is at least 2 and
// divides the group order.
func (s Signature) DividesOrder() bool {
	for _, p := range s.Points {
		if p.Order < 2 || s.Order%p.Order != 0 {
			return false
		}
	}

	return true
}

// RotationSum returns Σ (n/d)·r⁻¹ mod n, the sum of the monodromies around
// the branch points. It is zero for every cyclic cover.
func (s Signature) RotationSum() int {
	sum := 0

	for _, p := range s.Points {
		inv, ok := arith.ModInverse(p.Rotation, p.Order)
		if !ok {
			return -1
		}

		sum += s.Order / p.Order * inv
	}

	return arith.Mod(sum, s.Order)
}

// Canonical returns the representative of s used for comparison. Under
// RelabelFree it is the lexicographically smallest point list over all
// generators σ^k.
func (s Signature) Canonical(policy RelabelPolicy) Signature {
	best := s.Points.Sorted()

	if policy == RelabelFree {
		for _, k := range arith.Units(s.Order) {
			if candidate := s.Points.Scale(k); candidate.Compare(best) < 0 {
				best = candidate
			}
		}
	}

	return Signature{Order: s.Order, QuotientGenus: s.QuotientGenus, Points: best}
}

// Key identifies the canonical form of s.
func (s Signature) Key(policy RelabelPolicy) string {
	c := s.Canonical(policy)

	var b strings.Builder

	b.WriteString(strconv.Itoa(c.Order))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(c.QuotientGenus))
	b.WriteByte(':')

	for i, p := range c.Points {
		if i > 0 {
			b.WriteByte(',')
		}

		fmt.Fprintf(&b, "%d/%d", p.Order, p.Rotation)
	}

	return b.String()
}

// IsConsistentWith reports whether the points of s contain known, up to a
// change of generator when policy is RelabelFree.
func (s Signature) IsConsistentWith(known Points, policy RelabelPolicy) bool {
	for _, p := range known {
		if p.Order < 2 || s.Order%p.Order != 0 {
			return false
		}
	}

	if s.Points.Contains(known) {
		return true
	}

	if policy != RelabelFree {
		return false
	}

	for _, k := range arith.Units(s.Order) {
		if s.Points.Contains(known.Scale(k)) {
			return true
		}
	}

	return false
}

// String renders the signature as "(n, g', [(d1,r1), ...])".
func (s Signature) String() string {
	return fmt.Sprintf("(%d, %d, %s)", s.Order, s.QuotientGenus, s.Points)
}

// Compare orders signatures by group order, then point list, then quotient genus.
func (s Signature) Compare(t Signature) int {
	switch {
	case s.Order < t.Order:
		return -1
	case s.Order > t.Order:
		return 1
	}

	if c := s.Points.Compare(t.Points); c != 0 {
		return c
	}

	switch {
	case s.QuotientGenus < t.QuotientGenus:
		return -1
	case s.QuotientGenus > t.QuotientGenus:
		return 1
	default:
		return 0
	}
}
