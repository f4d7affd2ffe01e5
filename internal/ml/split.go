package ml

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// trainTestSplit embaralha os índices com semente fixa e separa a fração de validação
// no início da permutação
func trainTestSplit(n int, testFraction float64, seed int64) (train, test []int, err error) {
	nTest := int(math.Ceil(testFraction*float64(n) - 1e-9))
	if nTest < 1 {
		nTest = 1
	}
	nTrain := n - nTest

	if n < 2 || nTrain < 1 {
		return nil, nil, errors.Wrapf(ErrInsufficientData, "%d linhas disponíveis, mínimo 2", n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return perm[nTest:], perm[:nTest], nil
}
