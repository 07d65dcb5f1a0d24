package rational_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratinterp/rational"
)

// TestPow_ZeroToTheZero pins the 0^0 = 1 convention the Vandermonde build relies on.
func TestPow_ZeroToTheZero(t *testing.T) {
	got := rational.Pow(rational.Zero(), 0)
	assert.True(t, rational.IsOne(got), "0^0 must be 1, got %s", got.RatString())
}

func TestPow_Table(t *testing.T) {
	tests := []struct {
		name string
		x    string
		k    uint
		want string
	}{
		{"zero to positive", "0", 3, "0"},
		{"integer", "2", 10, "1024"},
		{"negative odd", "-3", 3, "-27"},
		{"negative even", "-3", 2, "9"},
		{"fraction", "3/2", 3, "27/8"},
		{"negative fraction", "-1/2", 5, "-1/32"},
		{"anything to zero", "-7/3", 0, "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x := rational.MustParse(tc.x)
			got := rational.Pow(x, tc.k)
			assert.Equal(t, tc.want, rational.String(got))
			// The base must be left untouched.
			assert.Equal(t, rational.MustParse(tc.x).RatString(), x.RatString())
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, rational.IsZero(rational.Zero()))
	assert.False(t, rational.IsZero(rational.FromFrac(1, 3)))

	assert.True(t, rational.IsOne(rational.One()))
	assert.True(t, rational.IsOne(rational.FromFrac(4, 4)))
	assert.False(t, rational.IsOne(rational.FromInt(-1)))
	assert.False(t, rational.IsOne(rational.FromFrac(1, 2)))

	assert.True(t, rational.IsPositive(rational.FromFrac(1, 1000)))
	assert.False(t, rational.IsPositive(rational.Zero()))
	assert.False(t, rational.IsPositive(rational.FromInt(-2)))

	assert.True(t, rational.Equal(rational.FromFrac(2, 4), rational.FromFrac(1, 2)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want *big.Rat
	}{
		{"3", big.NewRat(3, 1)},
		{"-7/2", big.NewRat(-7, 2)},
		{"4/6", big.NewRat(2, 3)},
		{"1.5", big.NewRat(3, 2)},
		{" 0 ", big.NewRat(0, 1)},
		{"010", big.NewRat(10, 1)},
		{"010/2", big.NewRat(5, 1)},
		{"-007/014", big.NewRat(-1, 2)},
		{"08/2", big.NewRat(4, 1)},
		{"+3/4", big.NewRat(3, 4)},
		{".25", big.NewRat(1, 4)},
		{"2.", big.NewRat(2, 1)},
		{"-1.5e2", big.NewRat(-150, 1)},
		{"25E-2", big.NewRat(1, 4)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := rational.Parse(tc.in)
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(tc.want), "Parse(%q) = %s", tc.in, got.RatString())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"", "abc", "1/0", "1//2", "(1", "1/2/3", "/2", "1/", "1/-2", "1/+2",
		"0x10", "0x10/1", "0b11/1", "0o7", "0x1p4", "1_000", "1e", ".", "1.2.3", "Inf", "NaN",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := rational.Parse(in)
			assert.ErrorIs(t, err, rational.ErrSyntax)
		})
	}
}

func TestPow_NilIsZero(t *testing.T) {
	assert.Equal(t, "1", rational.String(rational.Pow(nil, 0)))
	assert.Equal(t, "0", rational.String(rational.Pow(nil, 3)))
}

func TestClone_Independent(t *testing.T) {
	x := rational.FromInt(5)
	c := rational.Clone(x)
	c.Add(c, rational.One())
	assert.Equal(t, "5", rational.String(x))
	assert.Equal(t, "6", rational.String(c))
	assert.True(t, rational.IsZero(rational.Clone(nil)))
}
