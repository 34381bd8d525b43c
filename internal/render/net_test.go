package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

func TestNet_Plain(t *testing.T) {
	out := Net(gocube.NewCube(), Options{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "      W W W ", lines[0])
	assert.Equal(t, "O O O G G G R R R B B B ", lines[3])
	assert.Equal(t, "      Y Y Y ", lines[8])
}

func TestNet_PlainMatchesCubeString(t *testing.T) {
	c := gocube.NewCube()
	require.NoError(t, c.Move("R U F' L2"))
	assert.Equal(t, c.String(), Net(c, Options{}))
}

func TestNet_Color(t *testing.T) {
	out := Net(gocube.NewCube(), Options{Color: true})
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 9)
	assert.NotContains(t, out, "??")
}
