package network

import (
	"gonum.org/v1/gonum/graph"

	"github.com/evoflux/goneat/neat/genetics"
)

// simpleNode is a graph.Node whose ID is a genetics.NodeId cast to int64.
type simpleNode int64

func (n simpleNode) ID() int64 { return int64(n) }

func nodeIDFrom(id int64) genetics.NodeId { return genetics.NodeId(id) }

// weightedEdge is a graph.WeightedEdge between two simpleNodes.
type weightedEdge struct {
	from, to graph.Node
	W        float64
}

func (e *weightedEdge) From() graph.Node         { return e.from }
func (e *weightedEdge) To() graph.Node           { return e.to }
func (e *weightedEdge) ReversedEdge() graph.Edge { return &weightedEdge{from: e.to, to: e.from, W: e.W} }
func (e *weightedEdge) Weight() float64          { return e.W }

// nodeIterator is a minimal graph.Nodes over a fixed slice.
type nodeIterator struct {
	nodes []graph.Node
	pos   int
}

func newNodeIterator(nodes []graph.Node) *nodeIterator {
	return &nodeIterator{nodes: nodes, pos: -1}
}

func (it *nodeIterator) Next() bool {
	it.pos++
	return it.pos < len(it.nodes)
}

func (it *nodeIterator) Node() graph.Node {
	return it.nodes[it.pos]
}

func (it *nodeIterator) Len() int {
	return len(it.nodes) - (it.pos + 1)
}

func (it *nodeIterator) Reset() {
	it.pos = -1
}
