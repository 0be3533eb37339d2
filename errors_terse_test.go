//go:build chompterse

package chomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The terse build must change only the diagnostics, never the outcome.
func TestTerseErrorsKeepInnermostFrame(t *testing.T) {
	in := []byte("xyz")
	_, _, err := Alt(Recognize(Many1(Digit1)), TagString("nope"))(in)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindDigit, pe.Kind())
	assert.Len(t, pe.Frames(), 1, "terse mode accumulates nothing")
}

func TestTerseOutcomeUnchanged(t *testing.T) {
	rest, out, err := Alt(TagString("a"), TagString("b"))([]byte("b!"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(out))
	assert.Equal(t, "!", string(rest))
}
