package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koi-shell/koi/internal/syntax"
)

func TestValueCoercion(t *testing.T) {
	t.Run("string values coerce to themselves", func(t *testing.T) {
		s, err := Str("hello", syntax.Span{}).AsString()
		require.NoError(t, err)
		assert.Equal(t, "hello", s)
	})

	t.Run("int values format as decimal", func(t *testing.T) {
		s, err := IntVal(42, syntax.Span{}).AsString()
		require.NoError(t, err)
		assert.Equal(t, "42", s)
	})

	t.Run("lists are not string-coercible", func(t *testing.T) {
		v := ListVal([]Value{Str("a", syntax.Span{})}, syntax.Span{})
		_, err := v.AsString()
		assert.Error(t, err)
	})

	t.Run("nothing is not string-coercible", func(t *testing.T) {
		_, err := Nothing(syntax.Span{}).AsString()
		assert.Error(t, err)
	})

	t.Run("as list", func(t *testing.T) {
		items, err := ListVal([]Value{Str("a", syntax.Span{})}, syntax.Span{}).AsList()
		require.NoError(t, err)
		assert.Len(t, items, 1)

		_, err = Str("a", syntax.Span{}).AsList()
		assert.Error(t, err)
	})

	t.Run("nothing keeps its span", func(t *testing.T) {
		v := Nothing(syntax.Span{Start: 3, End: 7})
		assert.Equal(t, syntax.Span{Start: 3, End: 7}, v.Span)
	})
}
