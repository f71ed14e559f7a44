// Package graph assembles acquisition graphs and hands them to renderers.
// Construction is pure; rendering is delegated to a Renderer.
package graph

import (
	"fmt"

	"github.com/nidhogg/concept-lab/internal/knowledge"
)

// Node sizes mirror the concept-map convention: the root is drawn larger.
const (
	RootSize = 1000
	LeafSize = 800
)

// Node is a labelled vertex of an acquisition graph.
type Node struct {
	Label string `json:"label"`
	Size  int    `json:"size"`
}

// Edge is a directed link between two node labels.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a depth-1 star: Nodes[0] is the root, every edge leaves it.
type Graph struct {
	Concept  knowledge.Concept  `json:"concept"`
	Category knowledge.Category `json:"category"`
	Root     string             `json:"root"`
	Nodes    []Node             `json:"nodes"`
	Edges    []Edge             `json:"edges"`
}

// RootLabel names the root node, e.g. "AI Acquisition of 'freedom'".
func RootLabel(modelLabel string, c knowledge.Concept) string {
	return fmt.Sprintf("%s Acquisition of '%s'", modelLabel, c)
}

// Title is the caption handed to renderers.
func Title(modelLabel string, c knowledge.Concept, cat knowledge.Category) string {
	return fmt.Sprintf("Concept Map for %s - %s", RootLabel(modelLabel, c), cat)
}

// Build assembles the acquisition graph for concept under category.
// Leaf order follows knowledge.SubProcesses.
func Build(c knowledge.Concept, modelLabel string, cat knowledge.Category) *Graph {
	labels := knowledge.SubProcesses(cat)
	root := RootLabel(modelLabel, c)

	g := &Graph{
		Concept:  c,
		Category: cat,
		Root:     root,
		Nodes:    make([]Node, 0, len(labels)+1),
		Edges:    make([]Edge, 0, len(labels)),
	}
	g.Nodes = append(g.Nodes, Node{Label: root, Size: RootSize})
	for _, l := range labels {
		g.Nodes = append(g.Nodes, Node{Label: l, Size: LeafSize})
		g.Edges = append(g.Edges, Edge{From: root, To: l})
	}
	return g
}

// Leaves returns the sub-process labels in insertion order.
func (g *Graph) Leaves() []string {
	out := make([]string, 0, len(g.Edges))
	for _, e := range g.Edges {
		out = append(out, e.To)
	}
	return out
}
