// Package model defines the data structures for cyclic group action signatures.
package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mouse-blink/cyclact/internal/arith"
)

// Point is a ramification point of a Z/n action: the order of its stabilizer
// and the rotation index r, meaning that the stabilizer generator σ^(n/d)
// acts on the tangent space at the point by exp(2πi·r/d).
type Point struct {
	Order    int `yaml:"order"`
	Rotation int `yaml:"rotation"`
}

// ParsePoint parses the textual form "d/r".
func ParsePoint(s string) (Point, error) {
	orderStr, rotationStr, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Point{}, fmt.Errorf("point %q: expected ORDER/ROTATION", s)
	}

	order, err := strconv.Atoi(strings.TrimSpace(orderStr))
	if err != nil {
		return Point{}, fmt.Errorf("point %q: bad order: %w", s, err)
	}

	rotation, err := strconv.Atoi(strings.TrimSpace(rotationStr))
	if err != nil {
		return Point{}, fmt.Errorf("point %q: bad rotation: %w", s, err)
	}

	return Point{Order: order, Rotation: rotation}, nil
}

// String renders the point as "(d,r)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Order, p.Rotation)
}

// Less orders points by stabilizer order, then rotation index.
func (p Point) Less(q Point) bool {
	if p.Order != q.Order {
		return p.Order < q.Order
	}

	return p.Rotation < q.Rotation
}

// Points is a multiset of ramification points.
type Points []Point

// Sorted returns a copy in canonical (order, rotation) order.
func (ps Points) Sorted() Points {
	out := make(Points, len(ps))
	copy(out, ps)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Contains reports whether sub is a sub-multiset of ps.
func (ps Points) Contains(sub Points) bool {
	if len(sub) > len(ps) {
		return false
	}

	a, b := ps.Sorted(), sub.Sorted()
	i := 0

	for _, want := range b {
		for i < len(a) && a[i].Less(want) {
			i++
		}

		if i == len(a) || a[i] != want {
			return false
		}

		i++
	}

	return true
}

// Scale relabels the generator σ as σ^k: every rotation index r becomes
// k·r mod d. The result is sorted.
func (ps Points) Scale(k int) Points {
	out := make(Points, len(ps))
	for i, p := range ps {
		out[i] = Point{Order: p.Order, Rotation: arith.Mod(k*p.Rotation, p.Order)}
	}

	return out.Sorted()
}

// Compare orders point lists lexicographically; on a common prefix the
// shorter list comes first.
func (ps Points) Compare(qs Points) int {
	for i := 0; i < len(ps) && i < len(qs); i++ {
		if ps[i] == qs[i] {
			continue
		}

		if ps[i].Less(qs[i]) {
			return -1
		}

		return 1
	}

	switch {
	case len(ps) < len(qs):
		return -1
	case len(ps) > len(qs):
		return 1
	default:
		return 0
	}
}

// Orders returns the stabilizer orders of the points, in the same order.
func (ps Points) Orders() []int {
	orders := make([]int, len(ps))
	for i, p := range ps {
		orders[i] = p.Order
	}

	return orders
}

// String renders the list as "[(d1,r1), (d2,r2)]".
func (ps Points) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
