package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/godec/InputParameters"
	"github.com/notargets/godec/dec"
)

func parseInput(t *testing.T, text string) *InputParameters.InputParametersDEC {
	t.Helper()
	ip := &InputParameters.InputParametersDEC{}
	require.NoError(t, ip.Parse([]byte(text)))
	require.NoError(t, ip.Validate())
	return ip
}

func TestRunOperators(t *testing.T) {
	{ // Laplacian
		ip := parseInput(t, `
Height: 3
Width: 3
Faces:
  - [0, -3, 0]
  - [0, 2, 6]
  - [1, 0, 0]
`)
		var out bytes.Buffer
		require.NoError(t, runLaplacian(ip, newManifold(ip), &out))
		assert.Contains(t, out.String(), "Laplacian =")
		assert.Contains(t, out.String(), "-11")
		assert.Contains(t, out.String(), "16")
		assert.Error(t, runGradient(ip, newManifold(ip), &out))
	}
	{ // Divergence of a dual field
		ip := parseInput(t, `
Height: 1
Width: 1
VerticalEdges: [[1], [-2]]
HorizontalEdges: [[3, 7]]
`)
		var (
			out bytes.Buffer
			m   = newManifold(ip)
		)
		require.NoError(t, runDivergence(ip, m, &out))
		// primal = (-1, 2 | 3, 7), divergence = -1 - 2 + 7 - 3
		var ref bytes.Buffer
		printArray(&ref, "Divergence", dec.Form2From(m.Grid(), [][]float64{{1}}).View())
		assert.Equal(t, ref.String(), out.String())
	}
	{ // Divergence with distinct per-face values
		ip := parseInput(t, `
Height: 1
Width: 2
VerticalEdges: [[1, 0], [0, 4]]
HorizontalEdges: [[2, 5, 11]]
`)
		var (
			out bytes.Buffer
			m   = newManifold(ip)
		)
		require.NoError(t, runDivergence(ip, m, &out))
		// primal = (-1, 0, 0, -4 | 2, 5, 11)
		// face 0: -0 + -1 - 2 + 5 = 2, face 1: -(-4) + 0 - 5 + 11 = 10
		var ref bytes.Buffer
		printArray(&ref, "Divergence", dec.Form2From(m.Grid(), [][]float64{{2, 10}}).View())
		assert.Equal(t, ref.String(), out.String())
	}
	{ // Gradient
		ip := parseInput(t, `
Height: 1
Width: 2
Vertices: [[0, 1, 4], [10, 11, 14]]
`)
		var out bytes.Buffer
		require.NoError(t, runGradient(ip, newManifold(ip), &out))
		assert.Contains(t, out.String(), "VerticalEdges =")
		assert.Contains(t, out.String(), "HorizontalEdges =")
		assert.Contains(t, out.String(), "3")
		assert.Contains(t, out.String(), "10")
	}
	{ // Hodge of every degree, both directions
		ip := parseInput(t, `
Height: 1
Width: 1
Vertices: [[4, 4], [4, 4]]
VerticalEdges: [[1], [2]]
HorizontalEdges: [[3, 5]]
Faces: [[9]]
`)
		for degree := 0; degree < 3; degree++ {
			for _, inverse := range []bool{false, true} {
				ip.Degree, ip.Inverse = degree, inverse
				var out bytes.Buffer
				require.NoError(t, runHodge(ip, newManifold(ip), &out))
				assert.Contains(t, out.String(), "Hodge")
			}
		}
		ip.Degree = 0
		ip.Inverse = false
		var out bytes.Buffer
		require.NoError(t, runHodge(ip, newManifold(ip), &out))
		assert.Contains(t, out.String(), "1")
		ip.Degree = 5
		assert.True(t, errors.Is(runHodge(ip, newManifold(ip), &out), InputParameters.ErrInvalidInput))
	}
}

func TestNewManifoldParallelDegree(t *testing.T) {
	ip := &InputParameters.InputParametersDEC{Height: 4, Width: 4, ParallelDegree: 3}
	assert.Equal(t, 3, newManifold(ip).ParallelDegree())
	require.NoError(t, rootCmd.PersistentFlags().Set("parallel", "2"))
	defer func() { _ = rootCmd.PersistentFlags().Set("parallel", "0") }()
	assert.Equal(t, 2, newManifold(ip).ParallelDegree())
}

func TestLoadInput(t *testing.T) {
	_, err := loadInput("")
	assert.Error(t, err)
	_, err = loadInput(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Height: 0\nWidth: 2\n"), 0o644))
	_, err = loadInput(path)
	assert.True(t, errors.Is(err, InputParameters.ErrInvalidInput))
}

func TestExecuteLaplacian(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laplacian.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
Title: Laplacian Test
Height: 3
Width: 3
Faces:
  - [0, -3, 0]
  - [0, 2, 6]
  - [1, 0, 0]
`), 0o644))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"laplacian", "-I", path})
	defer rootCmd.SetOut(nil)
	require.NoError(t, execute())
	assert.Contains(t, out.String(), "Laplacian =")
	assert.Contains(t, out.String(), "-11")

	require.NoError(t, rootCmd.PersistentFlags().Set("profile", "bogus"))
	defer func() { _ = rootCmd.PersistentFlags().Set("profile", "") }()
	rootCmd.SetErr(&bytes.Buffer{})
	defer rootCmd.SetErr(nil)
	assert.Error(t, execute())
}

func TestExecuteStopsProfileOnFailure(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, rootCmd.PersistentFlags().Set("profile", "cpu"))
	defer func() { _ = rootCmd.PersistentFlags().Set("profile", "") }()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)
	rootCmd.SetArgs([]string{"divergence", "-I", filepath.Join(dir, "missing.yaml")})

	assert.Error(t, execute())
	assert.Nil(t, profiler)
	info, err := os.Stat(filepath.Join(dir, "cpu.pprof"))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestOperatorsAgreeWithLibrary(t *testing.T) {
	ip := parseInput(t, `
Height: 2
Width: 2
Faces: [[1, 2], [3, 4]]
`)
	m := newManifold(ip)
	var out bytes.Buffer
	require.NoError(t, runLaplacian(ip, m, &out))

	want := m.NewForm2()
	dec.NewLaplacian(m).Apply(want, dec.Form2From(m.Grid(), ip.Faces))
	var ref bytes.Buffer
	printArray(&ref, "Laplacian", want.View())
	assert.Equal(t, ref.String(), out.String())
}
