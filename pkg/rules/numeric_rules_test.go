package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestMin(t *testing.T) {
	t.Parallel()

	t.Run("fails below the bound", func(t *testing.T) {
		t.Parallel()

		err := rules.Min(18)(17.0, nil)
		require.Error(t, err)
		assert.Equal(t, "must be at least 18", err.Error())
	})

	t.Run("passes at and above the bound", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, rules.Min(18)(18.0, nil))
		assert.NoError(t, rules.Min(18)(19.0, nil))
	})

	t.Run("coerces numeric strings", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, rules.Min(10)("9", nil))
		assert.NoError(t, rules.Min(10)("10", nil))
	})

	t.Run("coerces integer values", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, rules.Min(5)(4, nil))
		assert.NoError(t, rules.Min(5)(5, nil))
	})

	t.Run("non-numeric values pass", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, rules.Min(5)("abc", nil))
		assert.NoError(t, rules.Min(5)("", nil))
		assert.NoError(t, rules.Min(5)(nil, nil))
		assert.NoError(t, rules.Min(5)(true, nil))
	})

	t.Run("uses custom message when given", func(t *testing.T) {
		t.Parallel()

		err := rules.Min(1, "too small")(0.5, nil)
		require.Error(t, err)
		assert.Equal(t, "too small", err.Error())
	})
}

func TestMax(t *testing.T) {
	t.Parallel()

	t.Run("fails above the bound", func(t *testing.T) {
		t.Parallel()

		err := rules.Max(100)(101.0, nil)
		require.Error(t, err)
		assert.Equal(t, "must be at most 100", err.Error())
	})

	t.Run("passes at and below the bound", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, rules.Max(100)(100.0, nil))
		assert.NoError(t, rules.Max(100)(99.0, nil))
	})

	t.Run("coerces numeric strings", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, rules.Max(10)("11", nil))
	})

	t.Run("non-numeric values pass", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, rules.Max(10)("eleven", nil))
		assert.NoError(t, rules.Max(10)("", nil))
	})
}
