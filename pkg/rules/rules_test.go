package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestSequenceEval(t *testing.T) {
	t.Parallel()

	fail := func(msg string) rules.Validator {
		return func(any, rules.Values) error { return errors.New(msg) }
	}
	pass := func(any, rules.Values) error { return nil }

	t.Run("empty sequence always passes", func(t *testing.T) {
		t.Parallel()

		var seq rules.Sequence
		assert.NoError(t, seq.Eval("anything", nil))
		assert.NoError(t, seq.Eval(nil, nil))
	})

	t.Run("first failing rule wins", func(t *testing.T) {
		t.Parallel()

		seq := rules.Sequence{pass, fail("first"), fail("second")}
		err := seq.Eval("x", nil)
		require.Error(t, err)
		assert.Equal(t, "first", err.Error())
	})

	t.Run("short-circuits after a failure", func(t *testing.T) {
		t.Parallel()

		calls := 0
		counting := func(any, rules.Values) error {
			calls++
			return nil
		}
		seq := rules.Sequence{fail("stop"), counting}
		require.Error(t, seq.Eval("x", nil))
		assert.Zero(t, calls)
	})

	t.Run("nil validators are skipped", func(t *testing.T) {
		t.Parallel()

		seq := rules.Sequence{nil, pass, nil}
		assert.NoError(t, seq.Eval("x", nil))
	})

	t.Run("passes the snapshot through to each rule", func(t *testing.T) {
		t.Parallel()

		var seen rules.Values
		spy := func(_ any, values rules.Values) error {
			seen = values
			return nil
		}
		snapshot := rules.Values{"a": 1}
		require.NoError(t, rules.Sequence{spy}.Eval("x", snapshot))
		assert.Equal(t, snapshot, seen)
	})
}

func TestValuesHelpers(t *testing.T) {
	t.Parallel()

	t.Run("Clone copies all entries", func(t *testing.T) {
		t.Parallel()

		orig := rules.Values{"name": "ada", "age": 36.0}
		clone := orig.Clone()
		assert.Equal(t, orig, clone)

		clone["name"] = "grace"
		assert.Equal(t, "ada", orig["name"])
	})

	t.Run("Clone of nil returns empty map", func(t *testing.T) {
		t.Parallel()

		var v rules.Values
		clone := v.Clone()
		assert.NotNil(t, clone)
		assert.Empty(t, clone)
	})

	t.Run("String coerces scalar values", func(t *testing.T) {
		t.Parallel()

		v := rules.Values{"s": "text", "n": 42.0, "b": true}
		assert.Equal(t, "text", v.String("s"))
		assert.Equal(t, "42", v.String("n"))
		assert.Equal(t, "true", v.String("b"))
		assert.Equal(t, "", v.String("missing"))
	})

	t.Run("Number coerces numeric strings and numbers", func(t *testing.T) {
		t.Parallel()

		v := rules.Values{"n": 7, "s": "3.5", "x": "abc", "b": false}

		n, ok := v.Number("n")
		assert.True(t, ok)
		assert.Equal(t, 7.0, n)

		n, ok = v.Number("s")
		assert.True(t, ok)
		assert.Equal(t, 3.5, n)

		_, ok = v.Number("x")
		assert.False(t, ok)

		_, ok = v.Number("b")
		assert.False(t, ok)
	})

	t.Run("Bool returns false for non-bool values", func(t *testing.T) {
		t.Parallel()

		v := rules.Values{"b": true, "s": "true"}
		assert.True(t, v.Bool("b"))
		assert.False(t, v.Bool("s"))
		assert.False(t, v.Bool("missing"))
	})
}
