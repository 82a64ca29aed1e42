package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteSlot(t *testing.T) {
	t.Run("replaces exactly one occurrence", func(t *testing.T) {
		out, err := substituteSlot("head {FROM_PRIOR} tail", SlotFromPrior, "body")
		require.NoError(t, err)
		assert.Equal(t, "head body tail", out)
	})

	t.Run("missing slot fails", func(t *testing.T) {
		_, err := substituteSlot("no slots here", SlotFromPrior, "body")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing slot {FROM_PRIOR}")
	})

	t.Run("duplicate slot fails", func(t *testing.T) {
		_, err := substituteSlot("{PERTURB} and {PERTURB}", SlotPerturb, "body")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 times")
	})
}

func TestIndentBody(t *testing.T) {
	assert.Equal(t, "    a;\n    b;", indentBody("a;\nb;\n"))
	assert.Equal(t, "    a;", indentBody("a;"))
	// Interior blank lines are indented too, matching the original layout.
	assert.Equal(t, "    a;\n    \n    b;", indentBody("a;\n\nb;"))
}
