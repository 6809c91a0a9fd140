package scene

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gravity(v float64) *float64 { return &v }

func TestBuildSetsWorldDimensionsAndGravity(t *testing.T) {
	cfg := Config{Width: 20, Height: 10, Gravity: gravity(-9.8)}
	s, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.World.Width)
	assert.Equal(t, 10.0, s.World.Height)
	assert.Equal(t, -9.8, s.World.Gravity)
}

func TestBuildDefaultsGravityWhenOmitted(t *testing.T) {
	cfg := Config{Width: 20, Height: 10}
	s, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultGravity, s.World.Gravity)
}

func TestBuildRejectsNonPositiveDimensions(t *testing.T) {
	_, err := Build(Config{Width: 0, Height: 10})
	assert.Error(t, err)
}

func TestBuildRegistersNamedObjects(t *testing.T) {
	cfg := Config{
		Width: 20, Height: 20,
		Objects: []ObjectConfig{
			{Name: "floor", Shape: "rectangle", Type: "static", Pos: [2]float64{10, 0}, Scale: [2]float64{10, 1}},
			{Name: "ball", Shape: "circle", Type: "dynamic", Pos: [2]float64{10, 10}, Scale: [2]float64{1, 1}, Mass: 1},
		},
	}
	s, err := Build(cfg)
	require.NoError(t, err)
	require.Contains(t, s.Names, "floor")
	require.Contains(t, s.Names, "ball")

	floor, ok := s.World.Body(s.Names["floor"])
	require.True(t, ok)
	assert.True(t, floor.Static)

	ball, ok := s.World.Body(s.Names["ball"])
	require.True(t, ok)
	assert.False(t, ball.Static)
}

func TestBuildSkipsObjectWithUnknownShape(t *testing.T) {
	cfg := Config{
		Width: 20, Height: 20,
		Objects: []ObjectConfig{
			{Name: "mystery", Shape: "dodecahedron", Type: "static"},
		},
	}
	s, err := Build(cfg)
	require.NoError(t, err)
	assert.NotContains(t, s.Names, "mystery")
	assert.Len(t, s.World.Bodies(), 4) // only the four boundary walls
}

func TestBuildSkipsDynamicObjectWithNonPositiveMass(t *testing.T) {
	cfg := Config{
		Width: 20, Height: 20,
		Objects: []ObjectConfig{
			{Name: "ghost", Shape: "circle", Type: "dynamic", Mass: 0},
		},
	}
	s, err := Build(cfg)
	require.NoError(t, err)
	assert.NotContains(t, s.Names, "ghost")
}

func TestBuildSkipsDuplicateObjectName(t *testing.T) {
	cfg := Config{
		Width: 20, Height: 20,
		Objects: []ObjectConfig{
			{Name: "dup", Shape: "circle", Type: "static"},
			{Name: "dup", Shape: "circle", Type: "static"},
		},
	}
	s, err := Build(cfg)
	require.NoError(t, err)
	assert.Len(t, s.World.Bodies(), 5) // 4 walls + one accepted "dup"
}

func TestBuildWiresConstraintsBetweenNamedObjects(t *testing.T) {
	cfg := Config{
		Width: 50, Height: 50,
		Objects: []ObjectConfig{
			{Name: "anchor", Shape: "circle", Type: "static", Pos: [2]float64{25, 45}},
			{Name: "bob", Shape: "circle", Type: "dynamic", Pos: [2]float64{28, 45}, Mass: 1, Scale: [2]float64{0.1, 0.1}},
		},
		Constraints: []ConstraintSpec{
			{Type: "rope", Objects: [2]string{"anchor", "bob"}, Distance: 5},
		},
	}
	s, err := Build(cfg)
	require.NoError(t, err)

	before, _ := s.World.Body(s.Names["bob"])
	s.World.Update(1.0)
	after, _ := s.World.Body(s.Names["bob"])
	assert.NotEqual(t, before.Pos, after.Pos)
}

func TestBuildSkipsConstraintReferencingUnknownObject(t *testing.T) {
	cfg := Config{
		Width: 20, Height: 20,
		Objects: []ObjectConfig{
			{Name: "only", Shape: "circle", Type: "static"},
		},
		Constraints: []ConstraintSpec{
			{Type: "rope", Objects: [2]string{"only", "missing"}, Distance: 1},
		},
	}
	// the malformed constraint must not prevent the rest of the scene from
	// loading.
	_, err := Build(cfg)
	require.NoError(t, err)
}

func TestLoadRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/scene.txt"
	require.NoError(t, os.WriteFile(path, []byte("width: 10\nheight: 10\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDecodesYaml(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/scene.yaml"
	contents := "width: 20\nheight: 20\ngravity: -9.8\nobjects:\n  - name: floor\n    shape: rectangle\n    type: static\n    pos: [10, 0]\n    scale: [10, 1]\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -9.8, s.World.Gravity)
	assert.Contains(t, s.Names, "floor")
}

func TestLoadDecodesJson(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/scene.json"
	contents := `{"width":20,"height":20,"objects":[{"name":"floor","shape":"rectangle","type":"static","pos":[10,0],"scale":[10,1]}]}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, s.Names, "floor")
}
