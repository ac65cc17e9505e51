package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoflux/goneat/neat/genetics"
)

type fakeDepths struct {
	d map[genetics.NodeId]int
}

func (f fakeDepths) DepthOf(node genetics.NodeId) int {
	v, ok := f.d[node]
	if !ok {
		panic("unregistered node in test depth source")
	}
	return v
}

func TestBuildPhenotypeDirectConnectionActivates(t *testing.T) {
	genome := genetics.NewGenome([]genetics.Gene{
		genetics.NewGene(5.0, 1, 0, 0),
	}, 1, 1)
	depths := fakeDepths{d: map[genetics.NodeId]int{1: 0, 0: 10}}

	p, err := BuildPhenotype(genome, depths)
	require.NoError(t, err)
	assert.Nil(t, p.HiddenIDs)

	out, err := p.Activate([]float64{1.0})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Greater(t, out[0], 0.5)
}

func TestBuildPhenotypeDisabledGeneContributesNothing(t *testing.T) {
	genome := genetics.NewGenome([]genetics.Gene{
		{Weight: 100.0, InNode: 1, OutNode: 0, Innovation: 0, Enabled: false},
	}, 1, 1)
	depths := fakeDepths{d: map[genetics.NodeId]int{1: 0, 0: 10}}

	p, err := BuildPhenotype(genome, depths)
	require.NoError(t, err)
	out, err := p.Activate([]float64{1.0})
	require.NoError(t, err)
	assert.Equal(t, 0.5, out[0], "expected a disabled gene to contribute nothing (sigmoid(0)=0.5)")
}

func TestBuildPhenotypeWithHiddenNode(t *testing.T) {
	genome := genetics.NewGenome([]genetics.Gene{
		genetics.NewGene(1.0, 1, 5, 0),
		genetics.NewGene(1.0, 5, 0, 1),
	}, 1, 1)
	depths := fakeDepths{d: map[genetics.NodeId]int{1: 0, 5: 5, 0: 10}}

	p, err := BuildPhenotype(genome, depths)
	require.NoError(t, err)
	require.Len(t, p.HiddenIDs, 1)
	assert.Equal(t, genetics.NodeId(5), p.HiddenIDs[0])

	out, err := p.Activate([]float64{1.0})
	require.NoError(t, err)
	assert.Greater(t, out[0], 0.5, "expected the hidden path to carry a positive signal")
}

func TestActivateRejectsWrongInputLength(t *testing.T) {
	genome := genetics.NewGenome([]genetics.Gene{genetics.NewGene(1.0, 1, 0, 0)}, 1, 1)
	depths := fakeDepths{d: map[genetics.NodeId]int{1: 0, 0: 10}}
	p, err := BuildPhenotype(genome, depths)
	require.NoError(t, err)
	_, err = p.Activate([]float64{1.0, 2.0})
	assert.Error(t, err)
}
