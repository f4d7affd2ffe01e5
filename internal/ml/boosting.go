package ml

import "gonum.org/v1/gonum/stat"

// gradientBoosting é o modelo primário: árvores rasas ajustadas sobre o resíduo
// do erro quadrático, com regularização L2 nas folhas
type gradientBoosting struct {
	baseScore    float64
	learningRate float64
	trees        []*regressionTree
}

func fitGradientBoosting(x []FeatureVector, y []float64, cfg TrainConfig) (*gradientBoosting, [NumFeatures]float64) {
	n := len(y)
	model := &gradientBoosting{
		baseScore:    stat.Mean(y, nil),
		learningRate: cfg.LearningRate,
	}

	pred := make([]float64, n)
	grad := make([]float64, n)
	hess := make([]float64, n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
		hess[i] = 1
		pred[i] = model.baseScore
	}

	builder := &treeBuilder{
		x:    x,
		grad: grad,
		hess: hess,
		params: treeParams{
			maxDepth:       cfg.MaxDepth,
			minSamplesLeaf: 1,
			minChildWeight: 1,
			lambda:         cfg.Lambda,
		},
	}

	for m := 0; m < cfg.Estimators; m++ {
		for i := range grad {
			grad[i] = pred[i] - y[i]
		}

		tree := builder.build(idx)
		model.trees = append(model.trees, tree)

		for i := range pred {
			pred[i] += cfg.LearningRate * tree.predict(x[i])
		}
	}

	return model, builder.averageGain()
}

func (m *gradientBoosting) PredictOne(x FeatureVector) float64 {
	out := m.baseScore
	for _, tree := range m.trees {
		out += m.learningRate * tree.predict(x)
	}
	return out
}
