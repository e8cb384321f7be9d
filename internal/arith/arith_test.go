package arith

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivisors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{n: 1, want: []int{1}},
		{n: 7, want: []int{1, 7}},
		{n: 12, want: []int{1, 2, 3, 4, 6, 12}},
		{n: 36, want: []int{1, 2, 3, 4, 6, 9, 12, 18, 36}},
	}

	for _, tt := range tests {
		got, err := Divisors(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Divisors(%d)", tt.n)
	}
}

func TestDivisors_NonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -12} {
		_, err := Divisors(n)
		if !errors.Is(err, ErrNonPositive) {
			t.Fatalf("Divisors(%d) error = %v, want ErrNonPositive", n, err)
		}
	}
}

func TestDivisors_DivideAndAscend(t *testing.T) {
	for n := 1; n <= 200; n++ {
		divs, err := Divisors(n)
		require.NoError(t, err)

		count := 0
		for d := 1; d <= n; d++ {
			if n%d == 0 {
				count++
			}
		}
		require.Len(t, divs, count, "n=%d", n)

		for i, d := range divs {
			require.Zero(t, n%d, "n=%d d=%d", n, d)
			if i > 0 {
				require.Less(t, divs[i-1], d)
			}
		}
	}
}

func TestStabilizerOrders(t *testing.T) {
	assert.Nil(t, StabilizerOrders(1))
	assert.Equal(t, []int{2}, StabilizerOrders(2))
	assert.Equal(t, []int{2, 3, 6}, StabilizerOrders(6))
	assert.Nil(t, StabilizerOrders(0))
}

func TestUnits(t *testing.T) {
	assert.Equal(t, []int{}, Units(1))
	assert.Equal(t, []int{1}, Units(2))
	assert.Equal(t, []int{1, 2}, Units(3))
	assert.Equal(t, []int{1, 3}, Units(4))
	assert.Equal(t, []int{1, 5}, Units(6))
	assert.Equal(t, []int{1, 3, 7, 9}, Units(10))
}

func TestUnits_CountMatchesTotient(t *testing.T) {
	totients := map[int]int{2: 1, 5: 4, 8: 4, 9: 6, 12: 4, 30: 8, 42: 12}
	for d, phi := range totients {
		assert.Len(t, Units(d), phi, "phi(%d)", d)
	}
}

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 6, GCD(-12, 18))
	assert.Equal(t, 5, GCD(0, 5))
	assert.Equal(t, 1, LCM())
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 60, LCM(2, 3, 4, 5))
	assert.Equal(t, 0, LCM(3, 0))
}

func TestMod(t *testing.T) {
	assert.Equal(t, 2, Mod(-1, 3))
	assert.Equal(t, 0, Mod(6, 3))
	assert.Equal(t, 1, Mod(7, 3))
}

func TestModInverse(t *testing.T) {
	for m := 2; m <= 40; m++ {
		for a := -m; a <= 2*m; a++ {
			inv, ok := ModInverse(a, m)
			if GCD(a, m) != 1 {
				assert.False(t, ok, "ModInverse(%d, %d)", a, m)
				continue
			}

			require.True(t, ok, "ModInverse(%d, %d)", a, m)
			assert.Equal(t, 1%m, Mod(a*inv, m), "ModInverse(%d, %d) = %d", a, m, inv)
			assert.True(t, inv >= 0 && inv < m)
		}
	}

	_, ok := ModInverse(1, 1)
	assert.False(t, ok)
}

func TestIsUnit(t *testing.T) {
	assert.True(t, IsUnit(3, 4))
	assert.False(t, IsUnit(2, 4))
	assert.True(t, IsUnit(-1, 5))
	assert.False(t, IsUnit(1, 1))
}
