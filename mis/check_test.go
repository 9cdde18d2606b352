package mis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRejectsBadSelections(t *testing.T) {
	// a - b - c - d
	g := buildGraph([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"})
	idx := func(raw string) uint32 {
		v, ok := g.Index(raw)
		require.True(t, ok)
		return v
	}

	good := Selection{idx("a"), idx("c")}
	assert.NoError(t, Check(g, good))
	assert.NoError(t, Check(g, Selection{idx("b"), idx("d")}))

	err := CheckIndependent(g, Selection{idx("a"), idx("b"), idx("d")})
	assert.ErrorIs(t, err, ErrNotIndependent)

	err = CheckMaximal(g, Selection{idx("a")})
	require.ErrorIs(t, err, ErrNotMaximal)
	assert.Contains(t, err.Error(), `"c"`)

	// Adjacent and still leaves "d" free.
	err = Check(g, Selection{idx("a"), idx("b")})
	assert.ErrorIs(t, err, ErrNotIndependent)
	assert.ErrorIs(t, err, ErrNotMaximal)
}

func TestCheckAllowsSelfLoopMember(t *testing.T) {
	g := buildGraph([2]string{"x", "x"}, [2]string{"x", "y"})
	x, _ := g.Index("x")
	assert.NoError(t, Check(g, Selection{x}))
}
