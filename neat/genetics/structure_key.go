// Package genetics implements the genome representation and its operators:
// gene mutation, crossover, speciation, and the population-level reproduction
// loop that drives one generation into the next.
package genetics

// NodeId identifies a node in a genome's phenotype. By convention inputs and
// hidden nodes use strictly positive ids (1..InputSize for inputs, larger
// ids assigned by the registry for hidden nodes split out of a connection),
// while outputs use zero and the strictly negative ids 0, -1, ..., -(n-1).
type NodeId int

// StructureKey canonicalizes a connection's structural identity: "this edge
// between these two nodes, whenever first discovered". Within one generation,
// two genes created for the same (InNode, OutNode) pair share the same
// innovation number; after InnovationRegistry.Advance the same pair receives
// a new one.
type StructureKey struct {
	InNode  NodeId
	OutNode NodeId
}

// NewStructureKey builds the structural identity for a connection from in to out.
func NewStructureKey(in, out NodeId) StructureKey {
	return StructureKey{InNode: in, OutNode: out}
}
