// Package network builds the dense-matrix phenotype a genome decodes into
// and evaluates it forward, given a node depth map supplied by the
// InnovationRegistry.
package network

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/evoflux/goneat/neat/genetics"
	neatmath "github.com/evoflux/goneat/neat/math"
)

// DepthSource answers depth-of-node queries; *genetics.InnovationRegistry
// satisfies it.
type DepthSource interface {
	DepthOf(node genetics.NodeId) int
}

// Phenotype is the dense feed-forward decoding of a genome: W holds
// connection weights, M the parallel enabled mask (stored as 0/1 since
// gonum's Dense is real-valued), laid out by the topological ordering
// described in Phenotype.rows/cols. Rows are "has-output" nodes (inputs and
// hiddens), columns are "has-input" nodes (hiddens and outputs); because
// depth[in] < depth[out] is enforced at AddConnection time, evaluating
// layer-by-layer in depth order never reads a column before every row that
// feeds it has been computed.
type Phenotype struct {
	W *mat.Dense
	M *mat.Dense

	InputSize  int
	OutputSize int
	HiddenIDs  []genetics.NodeId

	rows map[genetics.NodeId]int // has-output nodes: inputs ++ hidden, sorted by (depth, id)
	cols map[genetics.NodeId]int // has-input nodes: hidden ++ outputs, sorted by (depth, id)

	depth map[genetics.NodeId]int
}

// Masked reports whether the connection from the row node to the column node
// is enabled.
func (p *Phenotype) Masked(row, col int) bool {
	return p.M.At(row, col) != 0
}

// BuildPhenotype decodes genome's genes into dense matrices: collect every
// referenced node plus the fixed input/output ids, classify the rest as
// hidden, sort all nodes by (depth, id), then scatter each enabled gene's
// weight into W at (row(in), col(out)).
func BuildPhenotype(genome *genetics.Genome, depths DepthSource) (*Phenotype, error) {
	inputs := genome.InputIDs()
	outputs := genome.OutputIDs()

	isInput := toSet(inputs)
	isOutput := toSet(outputs)

	seen := make(map[genetics.NodeId]bool)
	var hidden []genetics.NodeId
	referenced := func(id genetics.NodeId) {
		if isInput[id] || isOutput[id] || seen[id] {
			return
		}
		seen[id] = true
		hidden = append(hidden, id)
	}
	for _, gene := range genome.Genes {
		referenced(gene.InNode)
		referenced(gene.OutNode)
	}

	depthOf := func(id genetics.NodeId) int { return depths.DepthOf(id) }
	sortByDepthThenID(inputs, depthOf)
	sortByDepthThenID(hidden, depthOf)
	sortByDepthThenID(outputs, depthOf)

	rowNodes := append(append([]genetics.NodeId{}, inputs...), hidden...)
	colNodes := append(append([]genetics.NodeId{}, hidden...), outputs...)
	sortByDepthThenID(rowNodes, depthOf)
	sortByDepthThenID(colNodes, depthOf)

	rows := indexOf(rowNodes)
	cols := indexOf(colNodes)

	w := mat.NewDense(len(rowNodes), len(colNodes), nil)
	m := mat.NewDense(len(rowNodes), len(colNodes), nil)

	for _, gene := range genome.Genes {
		if !gene.Enabled {
			continue
		}
		r, ok := rows[gene.InNode]
		if !ok {
			return nil, errors.Errorf("phenotype: gene references node %d which is not a has-output node", gene.InNode)
		}
		c, ok := cols[gene.OutNode]
		if !ok {
			return nil, errors.Errorf("phenotype: gene references node %d which is not a has-input node", gene.OutNode)
		}
		w.Set(r, c, gene.Weight)
		m.Set(r, c, 1)
	}

	depthMap := make(map[genetics.NodeId]int, len(rowNodes)+len(outputs))
	for _, id := range rowNodes {
		depthMap[id] = depthOf(id)
	}
	for _, id := range outputs {
		depthMap[id] = depthOf(id)
	}

	return &Phenotype{
		W:          w,
		M:          m,
		InputSize:  genome.InputSize,
		OutputSize: genome.OutputSize,
		HiddenIDs:  hidden,
		rows:       rows,
		cols:       cols,
		depth:      depthMap,
	}, nil
}

func toSet(ids []genetics.NodeId) map[genetics.NodeId]bool {
	set := make(map[genetics.NodeId]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func indexOf(ids []genetics.NodeId) map[genetics.NodeId]int {
	idx := make(map[genetics.NodeId]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return idx
}

func sortByDepthThenID(ids []genetics.NodeId, depthOf func(genetics.NodeId) int) {
	sort.Slice(ids, func(i, j int) bool {
		di, dj := depthOf(ids[i]), depthOf(ids[j])
		if di != dj {
			return di < dj
		}
		return ids[i] < ids[j]
	})
}

// Activate runs one forward pass: inputs must have length InputSize and are
// placed at the front of the row space; depth layers downstream of the
// inputs are evaluated strictly in depth order, so every node has all of its
// inbound activations available before it is read as a row.
func (p *Phenotype) Activate(inputs []float64) ([]float64, error) {
	if len(inputs) != p.InputSize {
		return nil, errors.Errorf("network: expected %d inputs, got %d", p.InputSize, len(inputs))
	}

	rows, _ := p.W.Dims()
	activation := make([]float64, rows)
	for i := 0; i < p.InputSize; i++ {
		if r, ok := p.rows[genetics.NodeId(i+1)]; ok {
			activation[r] = inputs[i]
		}
	}

	outputIDs := make([]genetics.NodeId, p.OutputSize)
	for i := 0; i < p.OutputSize; i++ {
		outputIDs[i] = genetics.NodeId(-i)
	}

	// Column nodes in depth order; a hidden column's computed activation also
	// becomes available as a row input to any deeper column, so each hidden
	// node's activation is written into both its column result and, if it
	// also appears among the row nodes, the corresponding row slot.
	colByIndex := make([]genetics.NodeId, len(p.cols))
	for id, idx := range p.cols {
		colByIndex[idx] = id
	}
	sortByDepthThenID(colByIndex, func(id genetics.NodeId) int { return p.depth[id] })

	outputs := make([]float64, p.OutputSize)
	for _, colID := range colByIndex {
		c := p.cols[colID]
		sum := 0.0
		for r := 0; r < rows; r++ {
			if p.Masked(r, c) {
				sum += p.W.At(r, c) * activation[r]
			}
		}
		value := neatmath.SteepenedSigmoid(sum)

		if r, isRow := p.rows[colID]; isRow {
			activation[r] = value
		}
		for i, outID := range outputIDs {
			if outID == colID {
				outputs[i] = value
			}
		}
	}
	return outputs, nil
}
