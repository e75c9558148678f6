// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanxh33/visualise-dijkstra/builder"
	"github.com/tanxh33/visualise-dijkstra/session"
)

var errUnknownKind = errors.New("unknown graph kind")

// graphFlags choose the graph and the endpoints of a command.
var gf struct {
	example  string
	random   bool
	generate string
	size     int
	cols     int
	density  float64
	seed     int64
	minW     int64
	maxW     int64
	from, to string
}

func addGraphFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&gf.example, "example", "e", "triangle", "example graph to load (see `examples`)")
	f.BoolVar(&gf.random, "random-example", false, "load a random example graph")
	f.StringVarP(&gf.generate, "generate", "g", "", "generate a graph instead: path|cycle|complete|star|wheel|grid|random")
	f.IntVarP(&gf.size, "size", "n", 6, "nodes for --generate (rows for grid)")
	f.IntVar(&gf.cols, "cols", 4, "columns for --generate grid")
	f.Float64Var(&gf.density, "density", 0.4, "edge probability for --generate random")
	f.Int64Var(&gf.seed, "seed", 1, "random seed for generated graphs and weights")
	f.Int64Var(&gf.minW, "min-weight", 1, "smallest generated edge weight")
	f.Int64Var(&gf.maxW, "max-weight", 9, "largest generated edge weight")
	f.StringVar(&gf.from, "from", "", "start node label (default: the example's start)")
	f.StringVar(&gf.to, "to", "", "finish node label (default: the example's finish)")
}

// loadGraph fills sess and returns the start and finish node IDs.
func loadGraph(sess *session.Session) (start, finish string, err error) {
	switch {
	case gf.generate != "":
		start, finish, err = generate(sess)
	case gf.random:
		var name string
		if name, err = sess.LoadRandomExample(); err == nil {
			start, finish, err = presetEndpoints(sess, name)
		}
	default:
		if err = sess.LoadExample(gf.example); err == nil {
			start, finish, err = presetEndpoints(sess, gf.example)
		}
	}
	if err != nil {
		return "", "", err
	}

	if gf.from != "" {
		if start, err = resolveNode(sess, gf.from); err != nil {
			return "", "", err
		}
	}
	if gf.to != "" {
		if finish, err = resolveNode(sess, gf.to); err != nil {
			return "", "", err
		}
	}
	return start, finish, nil
}

// presetEndpoints finds the preset's start and finish in sess by label,
// since importing renumbers the nodes.
func presetEndpoints(sess *session.Session, name string) (string, string, error) {
	p, err := builder.LoadPreset(name)
	if err != nil {
		return "", "", err
	}
	labels := p.Labels()
	return endpointsByLabel(sess, labels[p.Start], labels[p.Finish])
}

func endpointsByLabel(sess *session.Session, from, to string) (string, string, error) {
	start, err := resolveNode(sess, from)
	if err != nil {
		return "", "", err
	}
	finish, err := resolveNode(sess, to)
	if err != nil {
		return "", "", err
	}
	return start, finish, nil
}

func generate(sess *session.Session) (string, string, error) {
	var (
		ctor  builder.Constructor
		nodes = gf.size
	)
	switch strings.ToLower(gf.generate) {
	case "path":
		ctor = builder.Path(gf.size)
	case "cycle":
		ctor = builder.Cycle(gf.size)
	case "complete":
		ctor = builder.Complete(gf.size)
	case "star":
		ctor = builder.Star(gf.size)
	case "wheel":
		ctor = builder.Wheel(gf.size)
	case "grid":
		ctor = builder.Grid(gf.size, gf.cols)
		nodes = gf.size * gf.cols
	case "random":
		ctor = builder.RandomSparse(gf.size, gf.density)
	default:
		return "", "", fmt.Errorf("%w: %q", errUnknownKind, gf.generate)
	}
	if gf.minW < 1 || gf.maxW < gf.minW {
		return "", "", fmt.Errorf("weights must satisfy 1 <= min-weight <= max-weight, got %d..%d", gf.minW, gf.maxW)
	}

	g, err := builder.Build([]builder.BuilderOption{
		builder.WithSeed(gf.seed),
		builder.WithUniformWeight(gf.minW, gf.maxW),
	}, ctor)
	if err != nil {
		return "", "", err
	}
	labels := make(map[string]string, nodes)
	for i := 0; i < nodes; i++ {
		labels[strconv.Itoa(i)] = builder.ExcelColumnIDFn(i)
	}
	if err = sess.Import(g, labels); err != nil {
		return "", "", err
	}
	return endpointsByLabel(sess, labels["0"], labels[strconv.Itoa(nodes-1)])
}

// resolveNode accepts a label, or a node ID when no label matches.
func resolveNode(sess *session.Session, ref string) (string, error) {
	if id, ok := sess.NodeByLabel(ref); ok {
		return id, nil
	}
	if sess.Label(ref) != "" {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %q", session.ErrUnknownNode, ref)
}
