// Package arith provides the integer helpers used by the signature search:
// divisors, units modulo d, gcd/lcm and modular inverses.
package arith

import (
	"errors"
	"sort"
)

// ErrNonPositive is returned when an operation requires a positive integer.
var ErrNonPositive = errors.New("value must be positive")

// Divisors returns the positive divisors of n in ascending order.
func Divisors(n int) ([]int, error) {
	if n <= 0 {
		return nil, ErrNonPositive
	}

	var divs []int

	for j := 1; j*j <= n; j++ {
		if n%j != 0 {
			continue
		}

		divs = append(divs, j)
		if j*j != n {
			divs = append(divs, n/j)
		}
	}

	sort.Ints(divs)

	return divs, nil
}

// StabilizerOrders returns the divisors of n that are at least 2, i.e. the
// orders a non-trivial stabilizer of a Z/n action can have.
func StabilizerOrders(n int) []int {
	divs, err := Divisors(n)
	if err != nil || len(divs) < 2 {
		return nil
	}

	return divs[1:]
}

// Units returns the integers in [1, d-1] coprime to d.
func Units(d int) []int {
	if d < 2 {
		return []int{}
	}

	units := make([]int, 0, d-1)

	for r := 1; r < d; r++ {
		if GCD(r, d) == 1 {
			units = append(units, r)
		}
	}

	return units
}

// IsUnit reports whether a is invertible modulo m (m >= 2).
func IsUnit(a, m int) bool {
	if m < 2 {
		return false
	}

	return GCD(Mod(a, m), m) == 1
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of xs. LCM() is 1.
func LCM(xs ...int) int {
	l := 1

	for _, x := range xs {
		if x == 0 {
			return 0
		}

		if x < 0 {
			x = -x
		}

		l = l / GCD(l, x) * x
	}

	return l
}

// Mod returns a mod m in [0, m).
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// ModInverse returns the inverse of a modulo m in [1, m-1]. The second result
// is false when a is not a unit modulo m.
func ModInverse(a, m int) (int, bool) {
	if m < 2 {
		return 0, false
	}

	// extended Euclid on (a mod m, m)
	oldR, r := Mod(a, m), m
	oldS, s := 1, 0

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	if oldR != 1 {
		return 0, false
	}

	return Mod(oldS, m), true
}
