package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/poly"
	"github.com/katalvlaran/ratinterp/rational"
)

func vec(t *testing.T, lits ...string) matrix.Vector {
	t.Helper()
	v, err := matrix.ParseVector(lits...)
	if err != nil {
		t.Fatalf("ParseVector(%v): %v", lits, err)
	}

	return v
}

func TestEval(t *testing.T) {
	coeffs := vec(t, "-4", "15/2", "-3", "1/2")
	for x, want := range map[string]string{"1": "1", "2": "3", "3": "5", "4": "10", "0": "-4", "1/2": "-15/16"} {
		got := poly.Eval(coeffs, rational.MustParse(x))
		assert.Equal(t, want, rational.String(got), "p(%s)", x)
	}
}

func TestEval_EmptyAndZeroAtOrigin(t *testing.T) {
	assert.True(t, rational.IsZero(poly.Eval(nil, rational.FromInt(5))))
	// The constant term survives x = 0 (0^0 = 1).
	assert.Equal(t, "7", rational.String(poly.Eval(vec(t, "7", "3"), rational.Zero())))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"cubic", []string{"-4", "15/2", "-3", "1/2"}, "f(x)=1/2*x^3-3*x^2+15/2*x-4"},
		{"unit coefficients", []string{"0", "1", "0", "-1"}, "f(x)=-x^3+x"},
		{"constant minus one", []string{"-1"}, "f(x)=-1"},
		{"constant one", []string{"1"}, "f(x)=1"},
		{"linear plus one", []string{"1", "1"}, "f(x)=x+1"},
		{"all zero", []string{"0", "0"}, "f(x)=0"},
		{"empty", nil, "f(x)=0"},
		{"leading negative fraction", []string{"0", "0", "-2/3"}, "f(x)=-2/3*x^2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, poly.Format(vec(t, tc.in...)))
		})
	}
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "(-4 15/2 -3 1/2)", poly.FormatVector(vec(t, "-4", "7.5", "-3", "0.5")))
	assert.Equal(t, "()", poly.FormatVector(nil))
}

func TestFunc(t *testing.T) {
	f := poly.Func(vec(t, "-4", "15/2", "-3", "1/2"))
	assert.InDelta(t, 10.0, f(4), 1e-12)
	assert.InDelta(t, -4.0, f(0), 1e-12)
}
