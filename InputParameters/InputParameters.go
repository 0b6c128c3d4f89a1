package InputParameters

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/godec/dec"
)

var ErrInvalidInput = errors.New("invalid input parameters")

// Parameters obtained from the YAML input file. ghodss/yaml converts YAML to JSON
// before decoding, so keys are matched through the json tags.
type InputParametersDEC struct {
	Title           string      `json:"Title"`
	Height          int         `json:"Height"` // Number of faces along the vertical axis
	Width           int         `json:"Width"`  // Number of faces along the horizontal axis
	ParallelDegree  int         `json:"ParallelDegree"`
	Degree          int         `json:"Degree"`  // Form degree for the hodge command
	Inverse         bool        `json:"Inverse"` // Apply the dual to primal Hodge star
	Vertices        [][]float64 `json:"Vertices"`
	VerticalEdges   [][]float64 `json:"VerticalEdges"`
	HorizontalEdges [][]float64 `json:"HorizontalEdges"`
	Faces           [][]float64 `json:"Faces"`
}

func (ip *InputParametersDEC) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersDEC) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Faces (Height x Width)\n", ip.Height, ip.Width)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	fmt.Printf("[%d]\t\t\t= Form Degree\n", ip.Degree)
	fmt.Printf("[%v]\t\t\t= Inverse\n", ip.Inverse)
	fmt.Printf("%d rows\t\t\t= Vertices\n", len(ip.Vertices))
	fmt.Printf("%d rows\t\t\t= VerticalEdges\n", len(ip.VerticalEdges))
	fmt.Printf("%d rows\t\t\t= HorizontalEdges\n", len(ip.HorizontalEdges))
	fmt.Printf("%d rows\t\t\t= Faces\n", len(ip.Faces))
}

// Grid returns the grid described by Height and Width. Call Validate first.
func (ip *InputParametersDEC) Grid() dec.Grid2D {
	return dec.NewGrid2D(ip.Height, ip.Width)
}

// Validate checks the grid dimensions and the shape of every field that is present.
func (ip *InputParametersDEC) Validate() (err error) {
	if ip.Height < 1 || ip.Width < 1 {
		return fmt.Errorf("%w: Height and Width must be > 0, have %d x %d",
			ErrInvalidInput, ip.Height, ip.Width)
	}
	if ip.Degree < 0 || ip.Degree > 2 {
		return fmt.Errorf("%w: Degree must be 0, 1 or 2, have %d", ErrInvalidInput, ip.Degree)
	}
	h, w := ip.Height, ip.Width
	if err = checkShape("Vertices", ip.Vertices, h+1, w+1); err != nil {
		return
	}
	if err = checkShape("VerticalEdges", ip.VerticalEdges, h+1, w); err != nil {
		return
	}
	if err = checkShape("HorizontalEdges", ip.HorizontalEdges, h, w+1); err != nil {
		return
	}
	if (len(ip.VerticalEdges) == 0) != (len(ip.HorizontalEdges) == 0) {
		return fmt.Errorf("%w: VerticalEdges and HorizontalEdges must be given together",
			ErrInvalidInput)
	}
	return checkShape("Faces", ip.Faces, h, w)
}

// Require reports an error when a field needed by an operator is missing.
func (ip *InputParametersDEC) Require(field string) error {
	var present bool
	switch field {
	case "Vertices":
		present = len(ip.Vertices) != 0
	case "Edges":
		present = len(ip.VerticalEdges) != 0
	case "Faces":
		present = len(ip.Faces) != 0
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}
	if !present {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, field)
	}
	return nil
}

func checkShape(name string, rows [][]float64, nr, nc int) error {
	if len(rows) == 0 {
		return nil
	}
	if len(rows) != nr {
		return fmt.Errorf("%w: %s needs %d rows, have %d", ErrInvalidInput, name, nr, len(rows))
	}
	for i, row := range rows {
		if len(row) != nc {
			return fmt.Errorf("%w: %s row %d needs %d values, have %d",
				ErrInvalidInput, name, i, nc, len(row))
		}
	}
	return nil
}
