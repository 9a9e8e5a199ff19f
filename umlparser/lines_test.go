package umlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLinesEmptyInput(t *testing.T) {
	assert.Empty(t, GroupLines(""))
	assert.Empty(t, GroupLines("\n\r\n\r"))
}

func TestGroupLinesLineEndings(t *testing.T) {
	for _, src := range []string{
		"A\n  + x\nB\n  + y\n",
		"A\r\n  + x\r\nB\r\n  + y\r\n",
		"A\r  + x\rB\r  + y",
		"A\n\n  + x\r\n\rB\n  + y",
	} {
		groups := GroupLines(src)
		require.Len(t, groups, 2, "src: %q", src)
		assert.Equal(t, "A", groups[0].Header.Text)
		assert.Equal(t, []string{"  + x"}, memberTexts(groups[0]))
		assert.Equal(t, "B", groups[1].Header.Text)
		assert.Equal(t, []string{"  + y"}, memberTexts(groups[1]))
	}
}

func TestGroupLinesNumbersLines(t *testing.T) {
	groups := GroupLines("A\r\n\r\n  + x\rB")
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Header.Number)
	require.Len(t, groups[0].Members, 1)
	assert.Equal(t, 3, groups[0].Members[0].Number)
	assert.Equal(t, 4, groups[1].Header.Number)
}

func TestGroupLinesZeroLineIsKept(t *testing.T) {
	groups := GroupLines("0\n  0\n")
	require.Len(t, groups, 1)
	assert.Equal(t, "0", groups[0].Header.Text)
	assert.Equal(t, []string{"  0"}, memberTexts(groups[0]))
}

func TestGroupLinesTagsInterfaces(t *testing.T) {
	groups := GroupLines("<<Shape>>\n  + area()\nCircle :: Shape\n  + area()\n< NotAnInterface\n")
	require.Len(t, groups, 3)
	assert.Equal(t, KindInterface, groups[0].Kind)
	assert.Equal(t, KindClass, groups[1].Kind)
	assert.Equal(t, KindClass, groups[2].Kind)
}

func TestGroupLinesInterleavedKinds(t *testing.T) {
	src := "A\n  + a()\n<<I>>\n  + i()\n  + j()\nB\n<<J>>\n"
	groups := GroupLines(src)
	require.Len(t, groups, 4)
	assert.Equal(t, []Kind{KindClass, KindInterface, KindClass, KindInterface},
		[]Kind{groups[0].Kind, groups[1].Kind, groups[2].Kind, groups[3].Kind})
	assert.Len(t, groups[0].Members, 1)
	assert.Len(t, groups[1].Members, 2)
	assert.Empty(t, groups[2].Members)
	assert.Empty(t, groups[3].Members)
}

func TestGroupLinesSingleSpaceOpensGroup(t *testing.T) {
	groups := GroupLines("A\n + x\n")
	require.Len(t, groups, 2)
	assert.Equal(t, " + x", groups[1].Header.Text)
}

func TestGroupLinesMembersBeforeHeader(t *testing.T) {
	groups := GroupLines("  + x\n  + y()\nA\n")
	require.Len(t, groups, 2)
	assert.Equal(t, KindClass, groups[0].Kind)
	assert.Equal(t, "", groups[0].Header.Text)
	assert.Equal(t, 0, groups[0].Header.Number)
	assert.Len(t, groups[0].Members, 2)
	assert.Equal(t, "A", groups[1].Header.Text)
}

func memberTexts(g Group) []string {
	var out []string
	for _, m := range g.Members {
		out = append(out, m.Text)
	}
	return out
}
