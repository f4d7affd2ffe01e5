package ml

import "math/rand"

// randomForest é o modelo secundário: média de árvores CART completas,
// cada uma ajustada sobre uma amostra bootstrap do treino
type randomForest struct {
	trees []*regressionTree
}

func fitRandomForest(x []FeatureVector, y []float64, cfg TrainConfig) *randomForest {
	n := len(y)
	rng := rand.New(rand.NewSource(cfg.Seed))

	grad := make([]float64, n)
	hess := make([]float64, n)
	for i := range y {
		grad[i] = -y[i]
		hess[i] = 1
	}

	builder := &treeBuilder{
		x:      x,
		grad:   grad,
		hess:   hess,
		params: treeParams{minSamplesLeaf: 1},
	}

	forest := &randomForest{trees: make([]*regressionTree, 0, cfg.Estimators)}
	for t := 0; t < cfg.Estimators; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		forest.trees = append(forest.trees, builder.build(sample))
	}

	return forest
}

func (f *randomForest) PredictOne(x FeatureVector) float64 {
	if len(f.trees) == 0 {
		return 0
	}

	var sum float64
	for _, tree := range f.trees {
		sum += tree.predict(x)
	}
	return sum / float64(len(f.trees))
}
