package network

import (
	"gonum.org/v1/gonum/graph"

	"github.com/evoflux/goneat/neat/genetics"
)

// Graph adapts a Phenotype's connection structure into a gonum graph.Graph /
// graph.Weighted view. It exists purely as an independent check on the
// phenotype builder's depth-derived topological layout -- see graph_test.go
// -- not as part of the evaluation path itself.
type Graph struct {
	p *Phenotype
}

// AsGraph wraps p for traversal by gonum/graph algorithms.
func AsGraph(p *Phenotype) *Graph {
	return &Graph{p: p}
}

// the gonum graph.Graph interface

// Node returns the node with the given ID, or nil if none exists in the
// phenotype's row or column space.
func (g *Graph) Node(id int64) graph.Node {
	if !g.hasNode(id) {
		return nil
	}
	return simpleNode(id)
}

// Nodes returns every node referenced by the phenotype, rows and columns
// combined.
func (g *Graph) Nodes() graph.Nodes {
	seen := make(map[int64]bool)
	var nodes []graph.Node
	add := func(id int64) {
		if seen[id] {
			return
		}
		seen[id] = true
		nodes = append(nodes, simpleNode(id))
	}
	for id := range g.p.rows {
		add(int64(id))
	}
	for id := range g.p.cols {
		add(int64(id))
	}
	return newNodeIterator(nodes)
}

// From returns every node directly reachable from the node with the given ID.
func (g *Graph) From(id int64) graph.Nodes {
	r, ok := g.p.rows[nodeIDFrom(id)]
	if !ok {
		return graph.Empty
	}
	_, cols := g.p.W.Dims()
	var nodes []graph.Node
	for c := 0; c < cols; c++ {
		if g.p.Masked(r, c) {
			nodes = append(nodes, simpleNode(int64(colNodeID(g.p, c))))
		}
	}
	return newNodeIterator(nodes)
}

// HasEdgeBetween reports whether an edge exists between the two nodes,
// without regard to direction.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	return g.edgeBetween(xid, yid) != nil || g.edgeBetween(yid, xid) != nil
}

// Edge returns the edge from u to v if one exists, or nil otherwise.
func (g *Graph) Edge(uid, vid int64) graph.Edge {
	return g.edgeBetween(uid, vid)
}

// the gonum graph.Weighted interface

// WeightedEdge returns the weighted edge from u to v if one exists.
func (g *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	return g.edgeBetween(uid, vid)
}

// Weight returns the weight of the edge between the two nodes, and whether
// that edge exists.
func (g *Graph) Weight(xid, yid int64) (float64, bool) {
	e := g.edgeBetween(xid, yid)
	if e == nil {
		return 0, false
	}
	return e.W, true
}

func (g *Graph) edgeBetween(uid, vid int64) *weightedEdge {
	r, ok := g.p.rows[nodeIDFrom(uid)]
	if !ok {
		return nil
	}
	c, ok := g.p.cols[nodeIDFrom(vid)]
	if !ok {
		return nil
	}
	if !g.p.Masked(r, c) {
		return nil
	}
	return &weightedEdge{from: simpleNode(uid), to: simpleNode(vid), W: g.p.W.At(r, c)}
}

func (g *Graph) hasNode(id int64) bool {
	if _, ok := g.p.rows[nodeIDFrom(id)]; ok {
		return true
	}
	_, ok := g.p.cols[nodeIDFrom(id)]
	return ok
}

func colNodeID(p *Phenotype, col int) genetics.NodeId {
	for nid, c := range p.cols {
		if c == col {
			return nid
		}
	}
	return 0
}
