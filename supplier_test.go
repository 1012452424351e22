package throwfn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/throwfn/throwfn/wrapped"
)

func TestSupplier(t *testing.T) {
	boom := &parseFailure{input: "bad"}
	failing := MakeSupplier(func() (int, error) { return 0, boom })

	t.Run("Get", func(t *testing.T) {
		out, err := WrapValue(42).Get()
		assert.NoError(t, err)
		assert.Equal(t, 42, out)
	})
	t.Run("RoundTrip", func(t *testing.T) {
		recovered := CheckedSupplierAs[*parseFailure](failing.Unchecked())
		_, err := recovered.Get()
		assert.Same(t, boom, err)
	})
	t.Run("UncheckedCarrier", func(t *testing.T) {
		r := capture(func() { _ = failing.Unchecked()() })
		carrier, ok := r.(*wrapped.Error)
		require.True(t, ok)
		assert.Same(t, boom, carrier.Cause())
	})
	t.Run("OnErrorReturn", func(t *testing.T) {
		out, err := failing.OnErrorReturn(7).Get()
		assert.NoError(t, err)
		assert.Equal(t, 7, out)
	})
	t.Run("OnErrorGet", func(t *testing.T) {
		calls := 0
		fallback := MakeSupplier(func() (int, error) { calls++; return 11, nil })

		out, err := failing.OnErrorGet(fallback).Get()
		assert.NoError(t, err)
		assert.Equal(t, 11, out)
		assert.Equal(t, 1, calls)

		// never invoked while the supplier succeeds
		out, err = WrapValue(1).OnErrorGet(fallback).Get()
		assert.NoError(t, err)
		assert.Equal(t, 1, out)
		assert.Equal(t, 1, calls)
	})
	t.Run("OnErrorHandle", func(t *testing.T) {
		out, err := failing.OnErrorHandle(func(err error) (int, error) {
			assert.Same(t, boom, err)
			return -1, nil
		}).Get()
		assert.NoError(t, err)
		assert.Equal(t, -1, out)

		handlerErr := errors.New("handler broke")
		_, err = failing.OnErrorHandle(func(error) (int, error) { return 0, handlerErr }).Get()
		assert.Same(t, handlerErr, err)
	})
	t.Run("OnErrorResolve", func(t *testing.T) {
		out, err := failing.OnErrorResolve(func(error) int { return 3 }).Get()
		assert.NoError(t, err)
		assert.Equal(t, 3, out)
	})
	t.Run("OnErrorThrow", func(t *testing.T) {
		mapped := &pathFailure{path: "/z"}
		_, err := failing.OnErrorThrow(func(error) error { return mapped }).Get()
		assert.Same(t, mapped, err)
	})
	t.Run("OnErrorPanic", func(t *testing.T) {
		mapped := errors.New("now unchecked")
		r := capture(func() {
			_, _ = failing.OnErrorPanic(func(error) error { return mapped }).Get()
		})
		assert.Same(t, mapped, r)
	})
	t.Run("Hooks", func(t *testing.T) {
		var order []string
		sup := MakeSupplier(func() (int, error) {
			order = append(order, "call")
			return 1, nil
		}).PreHook(func() { order = append(order, "pre") }).PostHook(func() { order = append(order, "post") })

		_, err := sup.Get()
		assert.NoError(t, err)
		assert.Equal(t, []string{"pre", "call", "post"}, order)
	})
	t.Run("PostHookRunsOnFailure", func(t *testing.T) {
		ran := false
		_, err := failing.PostHook(func() { ran = true }).Get()
		assert.Same(t, boom, err)
		assert.True(t, ran)
	})
}
