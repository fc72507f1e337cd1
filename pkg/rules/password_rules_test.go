package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	t.Run("passes for password meeting all requirements", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, rules.StrongPassword()("Abcdefg1!", nil))
	})

	t.Run("reports length first", func(t *testing.T) {
		t.Parallel()

		err := rules.StrongPassword()("a", nil)
		require.Error(t, err)
		assert.Equal(t, "must be at least 8 characters long", err.Error())
	})

	t.Run("reports missing uppercase before later checks", func(t *testing.T) {
		t.Parallel()

		// Long enough, has lowercase, digit, and symbol; only uppercase is
		// missing, and that check runs second.
		err := rules.StrongPassword()("alllowercase1!", nil)
		require.Error(t, err)
		assert.Equal(t, "must contain an uppercase letter", err.Error())
	})

	t.Run("reports missing lowercase", func(t *testing.T) {
		t.Parallel()

		err := rules.StrongPassword()("ALLUPPER1!", nil)
		require.Error(t, err)
		assert.Equal(t, "must contain a lowercase letter", err.Error())
	})

	t.Run("reports missing digit", func(t *testing.T) {
		t.Parallel()

		err := rules.StrongPassword()("NoDigits!", nil)
		require.Error(t, err)
		assert.Equal(t, "must contain a digit", err.Error())
	})

	t.Run("reports missing special character", func(t *testing.T) {
		t.Parallel()

		err := rules.StrongPassword()("NoSymbol1", nil)
		require.Error(t, err)
		assert.Equal(t, "must contain a special character", err.Error())
	})

	t.Run("empty value passes", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, rules.StrongPassword()("", nil))
		assert.NoError(t, rules.StrongPassword()(nil, nil))
	})

	t.Run("custom message replaces whichever check fails", func(t *testing.T) {
		t.Parallel()

		err := rules.StrongPassword("weak password")("short", nil)
		require.Error(t, err)
		assert.Equal(t, "weak password", err.Error())

		err = rules.StrongPassword("weak password")("alllowercase1!", nil)
		require.Error(t, err)
		assert.Equal(t, "weak password", err.Error())
	})
}
