package genetics

import neat "github.com/evoflux/goneat/neat"

// Compare returns a genetic-distance score between g and other: the sum of
// a weight-coefficient term over matching genes plus disjoint/excess terms
// over genes unique to either side, used as the speciation threshold test.
//
// Matching genes contribute |self.innovation - other.innovation| * weight
// coefficient -- an innovation-number difference rather than a weight
// difference. That is the documented contract here, not a canonical NEAT
// formula, and is reproduced verbatim rather than "fixed": for genes that
// match by innovation the two numbers are equal, so the term is always zero
// under both compatibility methods, which both match genes by innovation.
func (g *Genome) Compare(other *Genome, opts *neat.Options) float64 {
	switch opts.GenomeCompatibilityMethod {
	case neat.GenomeCompatibilityMethodFast:
		return g.compatFast(other, opts)
	default:
		return g.compatLinear(other, opts)
	}
}

// compatLinear walks both gene lists from the start in innovation order.
func (g *Genome) compatLinear(other *Genome, opts *neat.Options) float64 {
	var (
		distance         float64
		i, j             int
		longer           = maxInt(len(g.Genes), len(other.Genes))
		disjoint, excess int
	)
	for i < len(g.Genes) && j < len(other.Genes) {
		a, b := g.Genes[i], other.Genes[j]
		switch {
		case a.Innovation == b.Innovation:
			distance += absFloat(float64(a.Innovation)-float64(b.Innovation)) * opts.GenomeWeightCoefficient
			i++
			j++
		case a.Innovation < b.Innovation:
			disjoint++
			i++
		default:
			disjoint++
			j++
		}
	}
	excess += (len(g.Genes) - i) + (len(other.Genes) - j)

	return distance + normalizedTerm(disjoint, longer, opts)*opts.GenomeDisjointCoefficient +
		normalizedTerm(excess, longer, opts)*opts.GenomeExcessCoefficient
}

// compatFast walks both gene lists from the end, exploiting that novel genes
// are always appended with the largest innovation numbers: a tail mismatch
// is necessarily excess, letting the walk stop as soon as it runs off either
// list rather than needing a separate excess pass.
func (g *Genome) compatFast(other *Genome, opts *neat.Options) float64 {
	var (
		distance         float64
		i, j             = len(g.Genes) - 1, len(other.Genes) - 1
		longer           = maxInt(len(g.Genes), len(other.Genes))
		disjoint, excess int
		stillExcess      = true // true until the first match walking in from the tail
	)
	for i >= 0 && j >= 0 {
		a, b := g.Genes[i], other.Genes[j]
		switch {
		case a.Innovation == b.Innovation:
			distance += absFloat(float64(a.Innovation)-float64(b.Innovation)) * opts.GenomeWeightCoefficient
			stillExcess = false
			i--
			j--
		case a.Innovation > b.Innovation:
			if stillExcess {
				excess++
			} else {
				disjoint++
			}
			i--
		default:
			if stillExcess {
				excess++
			} else {
				disjoint++
			}
			j--
		}
	}
	// Whatever remains once one list is exhausted sits below the point either side
	// still had matching history, so it is disjoint regardless of stillExcess.
	disjoint += (i + 1) + (j + 1)

	return distance + normalizedTerm(disjoint, longer, opts)*opts.GenomeDisjointCoefficient +
		normalizedTerm(excess, longer, opts)*opts.GenomeExcessCoefficient
}

func normalizedTerm(count, longer int, opts *neat.Options) float64 {
	if longer >= opts.GenomeMinDivide {
		return float64(count) / float64(maxInt(1, longer))
	}
	return float64(count)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
