package throwfn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperators(t *testing.T) {
	boom := &parseFailure{input: "bad"}

	t.Run("Identity", func(t *testing.T) {
		out, err := Identity[string]().Apply("same")
		assert.NoError(t, err)
		assert.Equal(t, "same", out)
	})
	t.Run("Unary", func(t *testing.T) {
		upper := MakeUnaryOperator(func(in string) (string, error) { return strings.ToUpper(in), nil })
		out, err := upper.Apply("abc")
		assert.NoError(t, err)
		assert.Equal(t, "ABC", out)

		failing := MakeUnaryOperator(func(string) (string, error) { return "", boom })
		out, err = failing.OnErrorReturn("fallback").Apply("x")
		assert.NoError(t, err)
		assert.Equal(t, "fallback", out)

		out, err = failing.OnErrorApply(upper).Apply("abc")
		assert.NoError(t, err)
		assert.Equal(t, "ABC", out)

		recovered := CheckedUnaryOperatorAs[*parseFailure](failing.Unchecked())
		_, err = recovered.Apply("x")
		assert.Same(t, boom, err)
	})
	t.Run("Binary", func(t *testing.T) {
		concat := MakeBinaryOperator(func(a, b string) (string, error) { return a + b, nil })
		out, err := concat.Apply("a", "b")
		assert.NoError(t, err)
		assert.Equal(t, "ab", out)

		failing := MakeBinaryOperator(func(string, string) (string, error) { return "", boom })
		out, err = failing.OnErrorApply(concat).Apply("a", "b")
		assert.NoError(t, err)
		assert.Equal(t, "ab", out)

		out, err = failing.OnErrorResolve(func(error) string { return "rescued" }).Apply("a", "b")
		assert.NoError(t, err)
		assert.Equal(t, "rescued", out)

		recovered := CheckedBinaryOperatorAs[*parseFailure](failing.Unchecked())
		_, err = recovered.Apply("a", "b")
		assert.Same(t, boom, err)
	})
}
