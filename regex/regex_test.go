package regex

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/chomp"
)

func TestMatch(t *testing.T) {
	ident := Match(regexp.MustCompile(`[a-z][a-z0-9_]*`))

	t.Run("prefix match consumes the span", func(t *testing.T) {
		rest, out, err := ident([]byte("foo_bar = 1"))
		require.NoError(t, err)
		assert.Equal(t, "foo_bar", string(out))
		assert.Equal(t, " = 1", string(rest))
	})

	t.Run("match not at the start is a mismatch", func(t *testing.T) {
		_, _, err := ident([]byte("  foo"))
		var pe *chomp.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, chomp.KindRegexp, pe.Kind())
	})

	t.Run("no match is never incomplete", func(t *testing.T) {
		_, _, err := ident([]byte("123"))
		assert.False(t, chomp.IsIncomplete(err))
	})
}

func TestFind(t *testing.T) {
	digits := Find(regexp.MustCompile(`[0-9]+`))

	rest, out, err := digits([]byte("abc 123 def"))
	require.NoError(t, err)
	assert.Equal(t, "123", string(out))
	assert.Equal(t, " def", string(rest), "bytes before the match are consumed and discarded")
}

func TestCaptures(t *testing.T) {
	kv := Captures(regexp.MustCompile(`([a-z]+)=([0-9]+)`))

	t.Run("groups alias the input", func(t *testing.T) {
		in := []byte("port=8080;")
		rest, groups, err := kv(in)
		require.NoError(t, err)
		require.Len(t, groups, 3)
		assert.Equal(t, "port=8080", string(groups[0]))
		assert.Equal(t, "port", string(groups[1]))
		assert.Equal(t, "8080", string(groups[2]))
		assert.Equal(t, ";", string(rest))
	})

	t.Run("non-participating group is nil", func(t *testing.T) {
		opt := Captures(regexp.MustCompile(`a(b)?c`))
		_, groups, err := opt([]byte("ac"))
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Nil(t, groups[1])
	})
}

func TestComposesWithCombinators(t *testing.T) {
	// The bridge returns ordinary parsers, so it participates in
	// alternation and sequencing like any primitive.
	word := Match(regexp.MustCompile(`[a-z]+`))
	p := chomp.SeparatedList0(chomp.TagString(","), word)

	_, outs, err := p([]byte("a,bb,ccc!"))
	require.NoError(t, err)
	require.Len(t, outs, 3)
	assert.Equal(t, "ccc", string(outs[2]))
}
