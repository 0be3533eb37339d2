package ebnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/chomp"
)

const listGrammar = `
List   = "[" [ Number { "," Number } ] "]" .
Number = Digit { Digit } .
Digit  = "0" … "9" .
`

func TestCompile(t *testing.T) {
	parser, err := Parse("list.ebnf", listGrammar, "List")
	require.NoError(t, err)

	t.Run("matches a full production", func(t *testing.T) {
		in := []byte("[1,22,333]rest")
		rest, matched, err := parser(in)
		require.NoError(t, err)
		assert.Equal(t, "[1,22,333]", string(matched))
		assert.Equal(t, "rest", string(rest))
	})

	t.Run("matched span aliases the input", func(t *testing.T) {
		in := []byte("[7]!")
		_, matched, err := parser(in)
		require.NoError(t, err)
		assert.Same(t, &in[0], &matched[0])
	})

	t.Run("empty list via the option", func(t *testing.T) {
		_, matched, err := parser([]byte("[]x"))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(matched))
	})

	t.Run("mismatch is an error", func(t *testing.T) {
		_, _, err := parser([]byte("{1}"))
		var pe *chomp.ParseError
		require.ErrorAs(t, err, &pe)
	})

	t.Run("truncated input is incomplete", func(t *testing.T) {
		_, _, err := parser([]byte("[1,2"))
		assert.True(t, chomp.IsIncomplete(err))
	})
}

func TestCompileRecursion(t *testing.T) {
	// Balanced parentheses: a production referring to itself.
	const grammar = `
Group = "(" [ Group ] ")" .
`
	parser, err := Parse("group.ebnf", grammar, "Group")
	require.NoError(t, err)

	_, matched, err := parser([]byte("((()))tail"))
	require.NoError(t, err)
	assert.Equal(t, "((()))", string(matched))
}

func TestCompileErrors(t *testing.T) {
	t.Run("unknown start production", func(t *testing.T) {
		_, err := Parse("g.ebnf", `A = "x" .`, "missing")
		require.Error(t, err)
	})

	t.Run("invalid grammar source", func(t *testing.T) {
		_, err := Parse("g.ebnf", `A = `, "A")
		require.Error(t, err)
	})

	t.Run("multi-byte range bounds are rejected", func(t *testing.T) {
		_, err := Parse("g.ebnf", `A = "aa" … "zz" .`, "A")
		require.Error(t, err)
	})
}

func TestTokenWithQuoteContent(t *testing.T) {
	// Token.String arrives unquoted from the grammar parser; a token whose
	// content is a literal quote character must match that quote, not the
	// empty string.
	const grammar = `
Quoted = "\"" Letter "\"" .
Letter = "a" … "z" .
`
	parser, err := Parse("quoted.ebnf", grammar, "Quoted")
	require.NoError(t, err)

	rest, matched, err := parser([]byte(`"x" tail`))
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(matched))
	assert.Equal(t, " tail", string(rest))
}

func TestAlternativeOrder(t *testing.T) {
	// Alternatives follow chomp.Alt: listed order, first Done wins.
	const grammar = `
Keyword = "if" | "ifelse" .
`
	parser, err := Parse("kw.ebnf", grammar, "Keyword")
	require.NoError(t, err)

	_, matched, err := parser([]byte("ifelse "))
	require.NoError(t, err)
	assert.Equal(t, "if", string(matched), "first alternative wins even when a later one matches more")
}
