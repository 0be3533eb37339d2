package chomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlt(t *testing.T) {
	ab := Alt(TagString("alpha"), TagString("beta"))

	t.Run("first match wins", func(t *testing.T) {
		rest, out, err := ab([]byte("alpha!"))
		require.NoError(t, err)
		assert.Equal(t, "alpha", string(out))
		assert.Equal(t, "!", string(rest))
	})

	t.Run("later branch matches", func(t *testing.T) {
		_, out, err := ab([]byte("beta!"))
		require.NoError(t, err)
		assert.Equal(t, "beta", string(out))
	})

	t.Run("branches see the same input", func(t *testing.T) {
		// "al" fails the first branch only after consuming nothing
		// visible to the second; beta still sees the full input.
		_, out, err := Alt(TagString("ax"), TagString("al"))([]byte("al"))
		require.NoError(t, err)
		assert.Equal(t, "al", string(out))
	})

	t.Run("incomplete preempts later alternatives", func(t *testing.T) {
		// "alp" is a prefix of "alpha": the first branch cannot decide,
		// so alt must not consult "beta" even though it would fail fast.
		// Preferring a later branch here could disagree with a retry on
		// a longer buffer.
		_, _, err := ab([]byte("alp"))
		assert.Equal(t, Needed(2), requireIncomplete(t, err))
	})

	t.Run("incomplete wins even when a later branch would match", func(t *testing.T) {
		p := Alt(TagString("ab"), TagString("a"))
		_, _, err := p([]byte("a"))
		assert.Equal(t, Needed(1), requireIncomplete(t, err))
	})

	t.Run("all branches failing is an error", func(t *testing.T) {
		_, _, err := ab([]byte("gamma"))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, KindTag, pe.Kind())
	})

	t.Run("error retains the first branch, innermost first", func(t *testing.T) {
		in := []byte("gamma")
		_, _, err := Alt(Digit1, TagString("x"))(in)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		frames := pe.Frames()
		assert.Equal(t, KindDigit, frames[0].Kind, "innermost frame is the first branch")
		assert.Equal(t, 0, Offset(in, frames[0].At))
		if verboseErrors {
			require.Len(t, frames, 2)
			assert.Equal(t, KindAlt, frames[1].Kind)
		}
	})

	t.Run("empty alt always fails", func(t *testing.T) {
		_, _, err := Alt[[]byte]()([]byte("anything"))
		assert.Equal(t, KindAlt, kindOf(t, err))
	})
}
