package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParametersParse(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Laplacian Test
Height: 3
Width: 3
ParallelDegree: 2
Faces:
  - [0, -3, 0]
  - [0, 2, 6]
  - [1, 0, 0]
`)
	var input InputParametersDEC
	require.NoError(t, input.Parse(fileInput))
	assert.Equal(t, "Laplacian Test", input.Title)
	assert.Equal(t, 3, input.Height)
	assert.Equal(t, 2, input.ParallelDegree)
	assert.Equal(t, [][]float64{{0, -3, 0}, {0, 2, 6}, {1, 0, 0}}, input.Faces)
	require.NoError(t, input.Validate())
	require.NoError(t, input.Require("Faces"))
	err = input.Require("Vertices")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	h, w := input.Grid().Dims()
	assert.Equal(t, [2]int{3, 3}, [2]int{h, w})
	input.Print()
}

func TestInputParametersValidate(t *testing.T) {
	base := func() InputParametersDEC {
		return InputParametersDEC{Height: 1, Width: 2}
	}
	{
		ip := base()
		ip.VerticalEdges = [][]float64{{1, 2}, {3, 4}}
		ip.HorizontalEdges = [][]float64{{5, 6, 7}}
		ip.Vertices = [][]float64{{0, 0, 0}, {0, 0, 0}}
		assert.NoError(t, ip.Validate())
		assert.NoError(t, ip.Require("Edges"))
	}
	bad := []func(ip *InputParametersDEC){
		func(ip *InputParametersDEC) { ip.Height = 0 },
		func(ip *InputParametersDEC) { ip.Degree = 3 },
		func(ip *InputParametersDEC) { ip.Faces = [][]float64{{1}} },
		func(ip *InputParametersDEC) { ip.Vertices = [][]float64{{1, 2, 3}} },
		func(ip *InputParametersDEC) { ip.VerticalEdges = [][]float64{{1, 2}, {3, 4}} },
		func(ip *InputParametersDEC) { ip.HorizontalEdges = [][]float64{{1, 2}} },
	}
	for i, mod := range bad {
		ip := base()
		mod(&ip)
		err := ip.Validate()
		require.Error(t, err, "case %d", i)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
	ip := base()
	assert.Error(t, ip.Require("Nothing"))
}
