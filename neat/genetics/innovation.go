package genetics

// InnovationRegistry assigns globally comparable identifiers to structural
// events -- new connections and the hidden nodes created by splitting a
// connection -- so that distant descendants can recognize homologous genes
// under crossover. next_innovation and next_hidden_node_id are monotonic for
// the lifetime of a run; conn_innov and node_innov are scoped to a single
// generation and cleared by Advance.
type InnovationRegistry struct {
	nextInnovation int
	nextHiddenNode NodeId

	connInnov map[StructureKey]int
	nodeInnov map[int]NodeId // keyed by the split gene's innovation number

	depth map[NodeId]int
}

// NewInnovationRegistry builds the first generation's registry. startDepth and
// endDepth are the fixed depths assigned to every input and output node
// respectively; inputIDs and outputIDs register those nodes' depths up front
// so DepthOf never fails for a node the driver itself created.
func NewInnovationRegistry(inputIDs, outputIDs []NodeId, startDepth, endDepth int, firstHiddenNode NodeId) *InnovationRegistry {
	r := &InnovationRegistry{
		nextHiddenNode: firstHiddenNode,
		connInnov:      make(map[StructureKey]int),
		nodeInnov:      make(map[int]NodeId),
		depth:          make(map[NodeId]int, len(inputIDs)+len(outputIDs)),
	}
	for _, id := range inputIDs {
		r.depth[id] = startDepth
	}
	for _, id := range outputIDs {
		r.depth[id] = endDepth
	}
	return r
}

// InnovationFor returns the innovation number for key, assigning a fresh one
// on first sight within the current generation.
func (r *InnovationRegistry) InnovationFor(key StructureKey) int {
	if innov, ok := r.connInnov[key]; ok {
		return innov
	}
	innov := r.nextInnovation
	r.connInnov[key] = innov
	r.nextInnovation++
	return innov
}

// HiddenNodeFor returns the hidden node id produced by splitting parent,
// assigning a fresh one (and its depth) on first sight within the current
// generation. Two independent add_node mutations splitting the same gene in
// the same generation resolve to the same hidden node id.
func (r *InnovationRegistry) HiddenNodeFor(parent Gene) NodeId {
	if id, ok := r.nodeInnov[parent.Innovation]; ok {
		return id
	}
	id := r.nextHiddenNode
	r.nextHiddenNode++
	r.nodeInnov[parent.Innovation] = id
	r.depth[id] = (r.depth[parent.InNode] + r.depth[parent.OutNode]) / 2
	return id
}

// DepthOf returns the depth of node. Every node referenced by a live gene
// must have been depth-registered, either at driver initialization or via
// HiddenNodeFor; looking up an unregistered node indicates a bug in
// phenotype construction and is a programmer error.
func (r *InnovationRegistry) DepthOf(node NodeId) int {
	d, ok := r.depth[node]
	if !ok {
		panic("genetics: depth lookup for unregistered node")
	}
	return d
}

// Advance returns the registry for the next generation: conn_innov and
// node_innov are cleared, while the monotonic counters and accumulated
// depths carry forward unchanged.
func (r *InnovationRegistry) Advance() *InnovationRegistry {
	return &InnovationRegistry{
		nextInnovation: r.nextInnovation,
		nextHiddenNode: r.nextHiddenNode,
		connInnov:      make(map[StructureKey]int),
		nodeInnov:      make(map[int]NodeId),
		depth:          r.depth,
	}
}
