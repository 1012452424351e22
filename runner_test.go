package throwfn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/throwfn/throwfn/wrapped"
)

func TestRunner(t *testing.T) {
	boom := &parseFailure{input: "bad"}
	failing := MakeRunner(func() error { return boom })

	t.Run("Run", func(t *testing.T) {
		calls := 0
		op := MakeRunner(func() error { calls++; return nil })
		assert.NoError(t, op.Run())
		assert.Equal(t, 1, calls)
	})
	t.Run("AndThen", func(t *testing.T) {
		var order []string
		first := MakeRunner(func() error { order = append(order, "first"); return nil })
		second := MakeRunner(func() error { order = append(order, "second"); return nil })

		assert.NoError(t, first.AndThen(second).Run())
		assert.Equal(t, []string{"first", "second"}, order)

		ran := false
		err := failing.AndThen(MakeRunner(func() error { ran = true; return nil })).Run()
		assert.Same(t, boom, err)
		assert.False(t, ran)
	})
	t.Run("RoundTrip", func(t *testing.T) {
		recovered := CheckedRunnerAs[*parseFailure](failing.Unchecked())
		assert.Same(t, boom, recovered.Run())
	})
	t.Run("UncheckedCarrier", func(t *testing.T) {
		r := capture(func() { failing.Unchecked()() })
		carrier, ok := r.(*wrapped.Error)
		require.True(t, ok)
		assert.Same(t, boom, carrier.Cause())
	})
	t.Run("OnErrorRun", func(t *testing.T) {
		calls := 0
		fallback := MakeRunner(func() error { calls++; return nil })

		assert.NoError(t, failing.OnErrorRun(fallback).Run())
		assert.Equal(t, 1, calls)
	})
	t.Run("OnErrorObserve", func(t *testing.T) {
		var seen error
		assert.NoError(t, failing.OnErrorObserve(func(err error) { seen = err }).Run())
		assert.Same(t, boom, seen)
	})
	t.Run("OnErrorHandle", func(t *testing.T) {
		handlerErr := errors.New("handler broke")
		err := failing.OnErrorHandle(func(error) error { return handlerErr }).Run()
		assert.Same(t, handlerErr, err)
	})
	t.Run("OnErrorDiscard", func(t *testing.T) {
		assert.NoError(t, failing.OnErrorDiscard().Run())
	})
	t.Run("OnErrorThrow", func(t *testing.T) {
		mapped := &pathFailure{path: "/r"}
		err := failing.OnErrorThrow(func(error) error { return mapped }).Run()
		assert.Same(t, mapped, err)
	})
	t.Run("OnErrorPanic", func(t *testing.T) {
		mapped := errors.New("now unchecked")
		r := capture(func() {
			_ = failing.OnErrorPanic(func(error) error { return mapped }).Run()
		})
		assert.Same(t, mapped, r)
	})
}
