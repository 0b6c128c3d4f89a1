/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/godec/InputParameters"
	"github.com/notargets/godec/dec"
)

type operatorRun func(ip *InputParameters.InputParametersDEC, m *dec.Manifold2D[float64], out io.Writer) error

// LaplacianCmd represents the laplacian command
var LaplacianCmd = newOperatorCmd("laplacian",
	"Discrete Laplacian of a face field",
	"Applies hodge2Primal -> derivative0Dual -> hodge1Dual -> derivative1Primal to the Faces field",
	runLaplacian)

// DivergenceCmd represents the divergence command
var DivergenceCmd = newOperatorCmd("divergence",
	"Divergence of a dual edge field",
	"Converts the dual 1-form given by VerticalEdges and HorizontalEdges to a primal 1-form and applies derivative1Primal",
	runDivergence)

// GradientCmd represents the gradient command
var GradientCmd = newOperatorCmd("gradient",
	"Exterior derivative of a vertex field",
	"Applies derivative0Primal to the Vertices field",
	runGradient)

// HodgeCmd represents the hodge command
var HodgeCmd = newOperatorCmd("hodge",
	"Hodge star of a form",
	"Applies the Hodge star of the form of the given Degree, dual to primal when Inverse is set",
	runHodge)

func newOperatorCmd(use, short, long string, run operatorRun) (c *cobra.Command) {
	c = &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				inputFile string
				ip        *InputParameters.InputParametersDEC
			)
			if inputFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
				return
			}
			if ip, err = loadInput(inputFile); err != nil {
				return
			}
			m := newManifold(ip)
			logger.Info("running operator",
				zap.String("operator", use),
				zap.String("title", ip.Title),
				zap.Stringer("grid", m.Grid()),
				zap.Int("parallelDegree", m.ParallelDegree()))
			return run(ip, m, cmd.OutOrStdout())
		},
	}
	c.Flags().StringP("inputConditionsFile", "I", "", "YAML file with Height, Width and the input fields")
	return
}

func init() {
	rootCmd.AddCommand(LaplacianCmd, DivergenceCmd, GradientCmd, HodgeCmd)
}

func loadInput(inputFile string) (ip *InputParameters.InputParametersDEC, err error) {
	var (
		data []byte
	)
	if len(inputFile) == 0 {
		exampleFile := `
########################################
Title: "Test Case"
Height: 3
Width: 3
Faces:
  - [0, -3, 0]
  - [0, 2, 6]
  - [1, 0, 0]
########################################
`
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile), example file:%s", exampleFile)
		return
	}
	if data, err = os.ReadFile(inputFile); err != nil {
		return
	}
	ip = &InputParameters.InputParametersDEC{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", inputFile, err)
		return
	}
	if err = ip.Validate(); err != nil {
		err = fmt.Errorf("%s: %w", inputFile, err)
	}
	return
}

// newManifold picks the parallel degree from the flag or config first, then the input file.
func newManifold(ip *InputParameters.InputParametersDEC) *dec.Manifold2D[float64] {
	var opts []dec.Option
	degree := viper.GetInt("parallel")
	if degree == 0 {
		degree = ip.ParallelDegree
	}
	if degree > 0 {
		opts = append(opts, dec.WithParallelDegree(degree))
	}
	return dec.NewManifold2D[float64](ip.Grid(), opts...)
}

func printArray(out io.Writer, name string, v dec.View2D[float64]) {
	fmt.Fprintf(out, "%s =\n%v\n", name, mat.Formatted(dec.Dense(v), mat.Squeeze()))
}

func runLaplacian(ip *InputParameters.InputParametersDEC, m *dec.Manifold2D[float64], out io.Writer) (err error) {
	if err = ip.Require("Faces"); err != nil {
		return
	}
	var (
		in     = dec.Form2From(m.Grid(), ip.Faces)
		result = m.NewForm2()
	)
	dec.NewLaplacian(m).Apply(result, in)
	printArray(out, "Laplacian", result.View())
	return
}

func runDivergence(ip *InputParameters.InputParametersDEC, m *dec.Manifold2D[float64], out io.Writer) (err error) {
	if err = ip.Require("Edges"); err != nil {
		return
	}
	var (
		dual       = dec.Form1From(m.Grid(), ip.VerticalEdges, ip.HorizontalEdges)
		primal     = m.NewForm1()
		divergence = m.NewForm2()
	)
	m.Hodge1Dual(primal, dual)
	m.Derivative1Primal(divergence, primal)
	printArray(out, "Divergence", divergence.View())
	return
}

func runGradient(ip *InputParameters.InputParametersDEC, m *dec.Manifold2D[float64], out io.Writer) (err error) {
	if err = ip.Require("Vertices"); err != nil {
		return
	}
	var (
		vertices = dec.Form0From(m.Grid(), ip.Vertices)
		edges    = m.NewForm1()
	)
	m.Derivative0Primal(edges, vertices)
	vertical, horizontal := edges.Split()
	printArray(out, "VerticalEdges", vertical)
	printArray(out, "HorizontalEdges", horizontal)
	return
}

func runHodge(ip *InputParameters.InputParametersDEC, m *dec.Manifold2D[float64], out io.Writer) (err error) {
	switch ip.Degree {
	case 0:
		if err = ip.Require("Vertices"); err != nil {
			return
		}
		in, result := dec.Form0From(m.Grid(), ip.Vertices), m.NewForm0()
		if ip.Inverse {
			m.Hodge0Dual(result, in)
		} else {
			m.Hodge0Primal(result, in)
		}
		printArray(out, "Hodge0", result.View())
	case 1:
		if err = ip.Require("Edges"); err != nil {
			return
		}
		in, result := dec.Form1From(m.Grid(), ip.VerticalEdges, ip.HorizontalEdges), m.NewForm1()
		if ip.Inverse {
			m.Hodge1Dual(result, in)
		} else {
			m.Hodge1Primal(result, in)
		}
		vertical, horizontal := result.Split()
		printArray(out, "Hodge1 VerticalEdges", vertical)
		printArray(out, "Hodge1 HorizontalEdges", horizontal)
	case 2:
		if err = ip.Require("Faces"); err != nil {
			return
		}
		in, result := dec.Form2From(m.Grid(), ip.Faces), m.NewForm2()
		if ip.Inverse {
			m.Hodge2Dual(result, in)
		} else {
			m.Hodge2Primal(result, in)
		}
		printArray(out, "Hodge2", result.View())
	default:
		err = fmt.Errorf("%w: Degree %d", InputParameters.ErrInvalidInput, ip.Degree)
	}
	return
}
