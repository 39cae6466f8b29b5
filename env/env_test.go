package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringAndRequire(t *testing.T) {
	t.Setenv("ATTRKIT_TEST_STR", "hello")

	v, ok := String("ATTRKIT_TEST_STR")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = String("ATTRKIT_TEST_UNSET")
	assert.False(t, ok)

	got, err := Require("ATTRKIT_TEST_STR")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = Require("ATTRKIT_TEST_UNSET")
	assert.ErrorIs(t, err, ErrNotSet)
}

func TestEmptyCountsAsUnset(t *testing.T) {
	t.Setenv("ATTRKIT_TEST_EMPTY", "")

	_, ok := String("ATTRKIT_TEST_EMPTY")
	assert.False(t, ok)
	assert.Equal(t, "fallback", StringOr("ATTRKIT_TEST_EMPTY", "fallback"))
}

func TestInt(t *testing.T) {
	t.Setenv("ATTRKIT_TEST_INT", "42")
	t.Setenv("ATTRKIT_TEST_BAD", "forty-two")

	v, err := Int("ATTRKIT_TEST_INT")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Int("ATTRKIT_TEST_BAD")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotSet, "parse failure must be distinguishable from unset")
	assert.Contains(t, err.Error(), "ATTRKIT_TEST_BAD")
	assert.Contains(t, err.Error(), "forty-two")

	_, err = Int("ATTRKIT_TEST_UNSET")
	assert.ErrorIs(t, err, ErrNotSet)

	assert.Equal(t, 42, IntOr("ATTRKIT_TEST_INT", 7))
	assert.Equal(t, 7, IntOr("ATTRKIT_TEST_BAD", 7))
	assert.Equal(t, 7, IntOr("ATTRKIT_TEST_UNSET", 7))
}

func TestBool(t *testing.T) {
	t.Setenv("ATTRKIT_TEST_BOOL", "true")

	v, err := Bool("ATTRKIT_TEST_BOOL")
	require.NoError(t, err)
	assert.True(t, v)

	t.Setenv("ATTRKIT_TEST_BOOL", "0")
	v, err = Bool("ATTRKIT_TEST_BOOL")
	require.NoError(t, err)
	assert.False(t, v)

	t.Setenv("ATTRKIT_TEST_BOOL", "yes")
	_, err = Bool("ATTRKIT_TEST_BOOL")
	assert.Error(t, err)
	assert.True(t, BoolOr("ATTRKIT_TEST_BOOL", true))
}

func TestFloat64(t *testing.T) {
	t.Setenv("ATTRKIT_TEST_FLOAT", "3.14")

	v, err := Float64("ATTRKIT_TEST_FLOAT")
	require.NoError(t, err)
	assert.InDelta(t, 3.14, v, 1e-9)

	assert.InDelta(t, 1.5, Float64Or("ATTRKIT_TEST_UNSET", 1.5), 1e-9)
}

func TestDuration(t *testing.T) {
	t.Setenv("ATTRKIT_TEST_DUR", "1m30s")

	v, err := Duration("ATTRKIT_TEST_DUR")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, v)

	t.Setenv("ATTRKIT_TEST_DUR", "90")
	_, err = Duration("ATTRKIT_TEST_DUR")
	assert.Error(t, err)
	assert.Equal(t, time.Second, DurationOr("ATTRKIT_TEST_DUR", time.Second))
}

func TestStrings(t *testing.T) {
	t.Setenv("ATTRKIT_TEST_LIST", " a, b ,,c ")

	assert.Equal(t, []string{"a", "b", "c"}, Strings("ATTRKIT_TEST_LIST", ","))
	assert.Equal(t, []string{}, Strings("ATTRKIT_TEST_UNSET", ","))
}
