package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartographer.dev/internal/generation"
)

func testMap(t *testing.T) *generation.Map {
	t.Helper()
	return generation.Generate(12345, generation.DefaultParams())
}

func TestComposeLayerOrder(t *testing.T) {
	scene := Compose(testMap(t))
	layers := scene.Layers()
	require.NotEmpty(t, layers)

	assert.Equal(t, LayerPaper, layers[0])
	assert.Equal(t, LayerCompass, layers[len(layers)-1])
	for i := 1; i < len(layers); i++ {
		assert.LessOrEqual(t, layers[i-1], layers[i], "command %d out of order", i)
	}
}

func TestComposeDeterministic(t *testing.T) {
	m := testMap(t)
	a := Compose(m)
	b := Compose(m)
	assert.Equal(t, a.Commands(), b.Commands())
	assert.Equal(t, m.Seed, a.Seed())
}

func TestComposeFeatureCommands(t *testing.T) {
	m := testMap(t)
	counts := generation.CountFeatures(generation.ClassifyFeatures(m))

	want := counts[generation.FeatureMountain]*3 +
		counts[generation.FeatureTree]*2 +
		counts[generation.FeatureHill]
	assert.Equal(t, want, Compose(m).Count(LayerFeatures))
}

func TestComposeSettlementLabels(t *testing.T) {
	m := testMap(t)
	var labels []string
	for _, c := range Compose(m).Commands() {
		if c.Layer == LayerSettlements && c.Kind == KindText {
			labels = append(labels, c.Text)
		}
	}

	var want []string
	for _, s := range m.Settlements() {
		want = append(want, s.Name)
	}
	assert.Equal(t, want, labels)
}

func TestComposeCounts(t *testing.T) {
	m := testMap(t)
	scene := Compose(m)

	assert.Equal(t, 1, scene.Count(LayerPaper))
	assert.Equal(t, len(m.Lakes), scene.Count(LayerLakes))
	assert.Equal(t, len(m.Rivers), scene.Count(LayerRivers))
	assert.Equal(t, 2*len(m.Ships), scene.Count(LayerShips))
	assert.Equal(t, 2, scene.Count(LayerCompass))
}

func TestComposeRoadsDashed(t *testing.T) {
	p := generation.DefaultParams()
	p.CityCount = 12
	m := generation.Generate(2024, p)
	require.Greater(t, len(m.Cities), 1)

	for _, c := range Compose(m).Commands() {
		if c.Layer == LayerRoads {
			assert.Equal(t, []float64{5, 5}, c.Style.Dash)
			assert.True(t, c.Style.HasStroke())
			assert.False(t, c.Style.HasFill())
		}
	}
}

func TestCommandsAreCopies(t *testing.T) {
	scene := Compose(testMap(t))
	cmds := scene.Commands()
	cmds[0].Style.Fill.R = 0
	cmds[0].Path.LineTo(1, 1)

	fresh := scene.Commands()
	assert.Equal(t, DefaultPalette().Paper, fresh[0].Style.Fill)
	assert.Equal(t, 5, fresh[0].Path.Len())
}

func TestLayerString(t *testing.T) {
	assert.Equal(t, "paper", LayerPaper.String())
	assert.Equal(t, "compass", LayerCompass.String())
	assert.Equal(t, "unknown", Layer(99).String())
}
