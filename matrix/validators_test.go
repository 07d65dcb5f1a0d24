package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ratinterp/matrix"
)

func TestValidateRectangular(t *testing.T) {
	assert.NoError(t, matrix.ValidateRectangular(nil))
	assert.NoError(t, matrix.ValidateRectangular(matrix.Matrix{}))
	assert.NoError(t, matrix.ValidateRectangular(matrix.Matrix{{}, {}}))
	assert.NoError(t, matrix.ValidateRectangular(matrix.Zeros(3, 2)))

	err := matrix.ValidateRectangular(matrix.Matrix{Vec("1", "2"), Vec("1", "2"), Vec("1")})
	assert.ErrorIs(t, err, matrix.ErrNonRectangular)
	assert.Contains(t, err.Error(), "row 2")
}

func TestValidateVecLen(t *testing.T) {
	assert.NoError(t, matrix.ValidateVecLen(Vec("1", "2"), 2))
	assert.NoError(t, matrix.ValidateVecLen(nil, 0))
	assert.ErrorIs(t, matrix.ValidateVecLen(Vec("1"), 2), matrix.ErrNonRectangular)
}
