package ml

import "sort"

const splitEpsilon = 1e-10

type treeParams struct {
	maxDepth       int // 0 = sem limite
	minSamplesLeaf int
	minChildWeight float64
	lambda         float64
}

type treeNode struct {
	feature     int
	threshold   float64
	left, right int
	value       float64
}

type regressionTree struct {
	nodes []treeNode
}

func (t *regressionTree) predict(x FeatureVector) float64 {
	i := 0
	for {
		n := &t.nodes[i]
		if n.left < 0 {
			return n.value
		}
		if x[n.feature] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}

// treeBuilder ajusta árvores sobre gradientes de primeira e segunda ordem.
// Com gradiente -y, hessiano 1 e lambda 0 a árvore resultante é a CART de variância,
// e as folhas guardam a média do alvo.
type treeBuilder struct {
	x      []FeatureVector
	grad   []float64
	hess   []float64
	params treeParams

	nodes  []treeNode
	gain   [NumFeatures]float64
	splits [NumFeatures]int
}

type treeSplit struct {
	feature   int
	threshold float64
	gain      float64
	left      []int
	right     []int
}

func (b *treeBuilder) build(idx []int) *regressionTree {
	b.nodes = nil
	b.grow(idx, 0)
	return &regressionTree{nodes: b.nodes}
}

func (b *treeBuilder) grow(idx []int, depth int) int {
	var g, h float64
	for _, i := range idx {
		g += b.grad[i]
		h += b.hess[i]
	}

	id := len(b.nodes)
	b.nodes = append(b.nodes, treeNode{left: -1, right: -1, value: -g / (h + b.params.lambda)})

	if b.params.maxDepth > 0 && depth >= b.params.maxDepth {
		return id
	}
	if len(idx) < 2*b.params.minSamplesLeaf {
		return id
	}

	best, ok := b.bestSplit(idx, g, h)
	if !ok {
		return id
	}

	b.gain[best.feature] += best.gain
	b.splits[best.feature]++

	left := b.grow(best.left, depth+1)
	right := b.grow(best.right, depth+1)

	b.nodes[id].feature = best.feature
	b.nodes[id].threshold = best.threshold
	b.nodes[id].left = left
	b.nodes[id].right = right

	return id
}

func (b *treeBuilder) bestSplit(idx []int, g, h float64) (treeSplit, bool) {
	lambda := b.params.lambda
	parent := g * g / (h + lambda)
	minGain := splitEpsilon * (1 + abs(parent))

	var best treeSplit
	found := false

	order := make([]int, len(idx))
	for f := 0; f < NumFeatures; f++ {
		copy(order, idx)
		sort.SliceStable(order, func(a, c int) bool {
			return b.x[order[a]][f] < b.x[order[c]][f]
		})

		var gl, hl float64
		for pos := 0; pos < len(order)-1; pos++ {
			gl += b.grad[order[pos]]
			hl += b.hess[order[pos]]

			current, next := b.x[order[pos]][f], b.x[order[pos+1]][f]
			if current == next {
				continue
			}

			nl, nr := pos+1, len(order)-pos-1
			if nl < b.params.minSamplesLeaf || nr < b.params.minSamplesLeaf {
				continue
			}

			gr, hr := g-gl, h-hl
			if hl < b.params.minChildWeight || hr < b.params.minChildWeight {
				continue
			}

			gain := gl*gl/(hl+lambda) + gr*gr/(hr+lambda) - parent
			if gain <= minGain || (found && gain <= best.gain) {
				continue
			}

			found = true
			best = treeSplit{
				feature:   f,
				threshold: (current + next) / 2,
				gain:      gain,
				left:      append([]int(nil), order[:pos+1]...),
				right:     append([]int(nil), order[pos+1:]...),
			}
		}
	}

	return best, found
}

// averageGain devolve o ganho médio por split de cada atributo, normalizado para somar 1.
// Atributos nunca usados em splits ficam com zero.
func (b *treeBuilder) averageGain() [NumFeatures]float64 {
	var out [NumFeatures]float64
	var total float64

	for f := range out {
		if b.splits[f] == 0 {
			continue
		}
		out[f] = b.gain[f] / float64(b.splits[f])
		total += out[f]
	}
	if total == 0 {
		return out
	}

	for f := range out {
		out[f] /= total
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
