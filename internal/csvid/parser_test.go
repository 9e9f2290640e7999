package csvid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "itemcompare/internal/errors"
)

func TestParseToInt64List_Valid(t *testing.T) {
	ids, err := NewParser().ParseToInt64List("1,2,3")

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestParseToInt64List_SpacesAndEmptyTokens(t *testing.T) {
	ids, err := NewParser().ParseToInt64List(" 1 ,  2,,3 , ")

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestParseToInt64List_KeepsOrderAndDuplicates(t *testing.T) {
	ids, err := NewParser().ParseToInt64List("3,1,3,2")

	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 3, 2}, ids)
}

func TestParseToInt64List_Blank(t *testing.T) {
	for _, csv := range []string{"", "   ", "\n\t  "} {
		ids, err := NewParser().ParseToInt64List(csv)

		ve, ok := apperrors.IsValidationError(err)
		require.True(t, ok, "csv %q", csv)
		assert.Equal(t, "productIds", ve.Details[0].Field)
		assert.Nil(t, ids)
	}
}

func TestParseToInt64List_NonNumericToken(t *testing.T) {
	ids, err := NewParser().ParseToInt64List("1,a,3")

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Message, `"a"`)
	assert.Contains(t, ve.Message, "non-numeric")
	assert.Nil(t, ids)
}

func TestParseToInt64List_OverflowIsRejected(t *testing.T) {
	_, err := NewParser().ParseToInt64List("92233720368547758070")

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestParseToInt64List_OnlySeparators(t *testing.T) {
	ids, err := NewParser().ParseToInt64List(" , ,")

	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestParseToInt64List_NegativeNumbers(t *testing.T) {
	ids, err := NewParser().ParseToInt64List("-1, 2")

	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 2}, ids)
}
