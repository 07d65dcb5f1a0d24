package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratinterp/console"
	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/rational"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", []string{}},
		{"blank", "   \t ", []string{}},
		{"plain words", "rn p1 cubic", []string{"rn", "p1", "cubic"}},
		{"grouped vectors", "itrp (1 2 3)  (4   5 6)", []string{"itrp", "(1 2 3)", "(4 5 6)"}},
		{"single-word vector", "print (7)", []string{"print", "(7)"}},
		{"empty vector", "itrp () (1)", []string{"itrp", "()", "(1)"}},
		{"spaced parens", "print ( 1 2 )", []string{"print", "( 1 2 )"}},
		{"unclosed group kept", "print (1 2", []string{"print", "(1 2"}},
		{"quoted file name", `plot p1 "my plot.svg"`, []string{"plot", "p1", "my plot.svg"}},
		{"comment dropped", "ls # everything", []string{"ls"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := console.Tokenize(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenize_OpenQuote(t *testing.T) {
	t.Parallel()

	_, err := console.Tokenize(`plot p1 "oops`)
	assert.ErrorIs(t, err, console.ErrTokenize)
}

func TestParseVector(t *testing.T) {
	t.Parallel()

	store := console.NewStore("")
	store.Set("q", matrix.NewVector(1, 2))

	v, err := console.ParseVector("(1/2 -3 0.25)", store)
	require.NoError(t, err)
	assert.True(t, v.Equal(matrix.Vector{rational.FromFrac(1, 2), rational.FromInt(-3), rational.FromFrac(1, 4)}))

	v, err = console.ParseVector("()", store)
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = console.ParseVector("q", store)
	require.NoError(t, err)
	assert.True(t, v.Equal(matrix.NewVector(1, 2)))

	_, err = console.ParseVector("nope", store)
	assert.ErrorIs(t, err, console.ErrUnknownName)

	_, err = console.ParseVector("(1 2", store)
	assert.ErrorIs(t, err, console.ErrInvalidVector)

	_, err = console.ParseVector("(1 x)", store)
	assert.ErrorIs(t, err, console.ErrInvalidVector)
	assert.ErrorIs(t, err, rational.ErrSyntax)
}

func TestParseVector_ReturnsCopy(t *testing.T) {
	t.Parallel()

	store := console.NewStore("")
	store.Set("q", matrix.NewVector(1, 2))

	v, err := console.ParseVector("q", store)
	require.NoError(t, err)
	v[0].SetInt64(99)

	again, _ := store.Get("q")
	assert.True(t, again.Equal(matrix.NewVector(1, 2)))
}
