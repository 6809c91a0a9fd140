package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchetphys/rb2d/scene"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const fallingBallScene = `
width: 20
height: 20
gravity: -10
objects:
  - name: ball
    shape: circle
    type: dynamic
    pos: [10, 15]
    scale: [1, 1]
    mass: 1
`

func TestRunPrintsBodyPoseAfterStepping(t *testing.T) {
	path := writeFixture(t, fallingBallScene)
	var out bytes.Buffer

	err := run([]string{path, "60", "0.016"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ball")
	assert.Contains(t, out.String(), "pos=(")
}

func TestRunDefaultsStepsAndDtWhenOmitted(t *testing.T) {
	path := writeFixture(t, fallingBallScene)
	var out bytes.Buffer

	err := run([]string{path}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ball")
}

func TestRunRejectsMissingSceneArgument(t *testing.T) {
	var out bytes.Buffer
	err := run(nil, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunRejectsInvalidStepsArgument(t *testing.T) {
	path := writeFixture(t, fallingBallScene)
	var out bytes.Buffer

	err := run([]string{path, "not-a-number"}, &out)
	assert.Error(t, err)
}

func TestRunRejectsInvalidDtArgument(t *testing.T) {
	path := writeFixture(t, fallingBallScene)
	var out bytes.Buffer

	err := run([]string{path, "10", "not-a-float"}, &out)
	assert.Error(t, err)
}

func TestRunPropagatesSceneLoadError(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"testdata/does-not-exist.yaml"}, &out)
	assert.Error(t, err)
}

func TestPrintResultsWritesEveryNamedBody(t *testing.T) {
	path := writeFixture(t, fallingBallScene)
	s, err := scene.Load(path)
	require.NoError(t, err)

	var out bytes.Buffer
	printResults(&out, s)
	assert.Contains(t, out.String(), "ball")
}
