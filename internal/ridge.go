package internal

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// fitRidge solves the ridge normal equations on mean-centered data so
// the intercept stays unpenalized. The solve is a Cholesky
// factorization of X'X + alpha*I,
// which is deterministic: identical inputs reproduce identical
// coefficients bit for bit.
func fitRidge(x [][]float64, y []float64, alpha float64) (weights []float64, intercept float64, err error) {
	n := len(x)
	if n == 0 || n != len(y) {
		return nil, 0, fmt.Errorf("ridge fit needs matching non-empty x (%d) and y (%d)", n, len(y))
	}
	p := len(x[0])
	if p == 0 {
		return nil, 0, fmt.Errorf("ridge fit needs at least one feature column")
	}
	if alpha < 0 {
		return nil, 0, fmt.Errorf("ridge alpha must be non-negative, got %f", alpha)
	}

	meanX := make([]float64, p)
	for _, row := range x {
		for j, v := range row {
			meanX[j] += v
		}
	}
	for j := range meanX {
		meanX[j] /= float64(n)
	}
	meanY := 0.0
	for _, v := range y {
		meanY += v
	}
	meanY /= float64(n)

	// gram = Xc'Xc + alpha*I, rhs = Xc'yc over centered data
	gram := mat.NewSymDense(p, nil)
	rhs := make([]float64, p)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			sum := 0.0
			for _, row := range x {
				sum += (row[i] - meanX[i]) * (row[j] - meanX[j])
			}
			if i == j {
				sum += alpha
			}
			gram.SetSym(i, j, sum)
		}
	}
	for j := 0; j < p; j++ {
		sum := 0.0
		for i, row := range x {
			sum += (row[j] - meanX[j]) * (y[i] - meanY)
		}
		rhs[j] = sum
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(gram); !ok {
		return nil, 0, fmt.Errorf("ridge system is not positive definite (alpha=%f)", alpha)
	}
	var sol mat.VecDense
	if err := chol.SolveVecTo(&sol, mat.NewVecDense(p, rhs)); err != nil {
		return nil, 0, fmt.Errorf("failed to solve ridge system: %w", err)
	}

	weights = make([]float64, p)
	intercept = meanY
	for j := 0; j < p; j++ {
		weights[j] = sol.AtVec(j)
		intercept -= weights[j] * meanX[j]
	}
	return weights, intercept, nil
}
