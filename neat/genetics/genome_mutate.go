package genetics

import (
	"math/rand"

	neat "github.com/evoflux/goneat/neat"
)

// AddNode splits a uniformly random existing gene G in two, inserting a new
// hidden node between G.InNode and G.OutNode. The new in-edge carries weight
// 1.0 and the new out-edge carries G's original weight, so the split network
// initially computes something very close to what it computed before the
// split. G itself is disabled (not removed) in the child.
func (g *Genome) AddNode(registry *InnovationRegistry) *Genome {
	if len(g.Genes) == 0 {
		return g
	}
	idx := rand.Intn(len(g.Genes))
	parent := g.Genes[idx]

	newID := registry.HiddenNodeFor(parent)
	inGene := NewGene(1.0, parent.InNode, newID, registry.InnovationFor(NewStructureKey(parent.InNode, newID)))
	outGene := NewGene(parent.Weight, newID, parent.OutNode, registry.InnovationFor(NewStructureKey(newID, parent.OutNode)))

	child := g.Copy()
	child.Genes[idx] = parent.Copy()
	child.Genes[idx].Enabled = false
	child.Genes = append(child.Genes, inGene, outGene)
	child.SortGenes()
	return child
}

// AddConnection wires a new edge between an input-or-hidden node and a
// hidden-or-output node strictly deeper than it, provided such a pair isn't
// already connected. If every candidate start exhausts its candidate ends --
// the topology is saturated -- AddConnection returns g unchanged; this is a
// deliberate silent fallback, not an error, so the reproduction loop always
// produces a child.
func (g *Genome) AddConnection(registry *InnovationRegistry, opts *neat.Options) *Genome {
	min, max := opts.GeneMinWeight, opts.GeneMaxWeight

	hidden := g.hiddenNodeIDs(registry)
	starts := append(append([]NodeId{}, g.InputIDs()...), hidden...)
	shuffle(starts)

	for _, start := range starts {
		candidateEnds := g.candidateEndsFor(start, hidden, registry)
		if len(candidateEnds) == 0 {
			continue
		}
		end := candidateEnds[rand.Intn(len(candidateEnds))]
		weight := min + rand.Float64()*(max-min)
		innov := registry.InnovationFor(NewStructureKey(start, end))

		child := g.Copy()
		child.Genes = append(child.Genes, NewGene(weight, start, end, innov))
		child.SortGenes()
		return child
	}
	neat.DebugLog("genome: AddConnection found no legal (start, end) pair, topology saturated")
	return g
}

// candidateEndsFor returns the legal targets for a new edge starting at
// start: hidden or output nodes strictly deeper than start, excluding any node
// already directly connected from start.
func (g *Genome) candidateEndsFor(start NodeId, hidden []NodeId, registry *InnovationRegistry) []NodeId {
	startDepth := registry.DepthOf(start)
	connected := make(map[NodeId]bool)
	for _, gene := range g.Genes {
		if gene.InNode == start {
			connected[gene.OutNode] = true
		}
	}

	pool := append(append([]NodeId{}, hidden...), g.OutputIDs()...)
	var ends []NodeId
	for _, n := range pool {
		if connected[n] {
			continue
		}
		if registry.DepthOf(n) > startDepth {
			ends = append(ends, n)
		}
	}
	return ends
}

// hiddenNodeIDs returns the distinct non-input, non-output node ids
// referenced by g's genes.
func (g *Genome) hiddenNodeIDs(registry *InnovationRegistry) []NodeId {
	isInput := make(map[NodeId]bool, g.InputSize)
	for _, id := range g.InputIDs() {
		isInput[id] = true
	}
	isOutput := make(map[NodeId]bool, g.OutputSize)
	for _, id := range g.OutputIDs() {
		isOutput[id] = true
	}

	seen := make(map[NodeId]bool)
	var hidden []NodeId
	add := func(id NodeId) {
		if isInput[id] || isOutput[id] || seen[id] {
			return
		}
		seen[id] = true
		hidden = append(hidden, id)
	}
	for _, gene := range g.Genes {
		add(gene.InNode)
		add(gene.OutNode)
	}
	return hidden
}

func shuffle(ids []NodeId) {
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}
