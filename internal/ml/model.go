package ml

import (
	"math"
	"math/rand"
	"sort"
)

// Training hyperparameters. The seed and the bounded iteration count keep
// training fully deterministic for a fixed corpus.
const (
	randomSeed     = 42
	maxIterations  = 1000
	learningRate   = 0.5
	l2Penalty      = 1e-3
	convergenceTol = 1e-5
)

// LinearModel is a multinomial logistic regression classifier. Fields are
// exported for artifact serialization; a fitted model is read-only.
type LinearModel struct {
	Classes   []string    `json:"classes"`   // sorted label set
	Weights   [][]float64 `json:"weights"`   // [class][feature]
	Intercept []float64   `json:"intercept"` // [class]
}

// TrainLinearModel fits a softmax classifier on the vectorized corpus with
// stochastic gradient descent: seeded shuffle each epoch, L2 regularization,
// and early stop once updates fall below the convergence tolerance.
func TrainLinearModel(vectors [][]float64, labels []string) *LinearModel {
	classes := uniqueSorted(labels)
	classIndex := make(map[string]int, len(classes))
	for i, c := range classes {
		classIndex[c] = i
	}

	features := 0
	if len(vectors) > 0 {
		features = len(vectors[0])
	}

	m := &LinearModel{
		Classes:   classes,
		Weights:   make([][]float64, len(classes)),
		Intercept: make([]float64, len(classes)),
	}
	for c := range m.Weights {
		m.Weights[c] = make([]float64, features)
	}

	rng := rand.New(rand.NewSource(randomSeed))
	order := make([]int, len(vectors))
	for i := range order {
		order[i] = i
	}

	for iter := 0; iter < maxIterations; iter++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		lr := learningRate / (1 + float64(iter)*0.01)
		maxUpdate := 0.0

		for _, idx := range order {
			x := vectors[idx]
			target := classIndex[labels[idx]]
			probs := m.PredictProba(x)

			for c := range m.Classes {
				grad := probs[c]
				if c == target {
					grad -= 1
				}
				step := lr * grad
				m.Intercept[c] -= step
				if math.Abs(step) > maxUpdate {
					maxUpdate = math.Abs(step)
				}
				for f, xf := range x {
					if xf == 0 {
						continue
					}
					delta := lr * (grad*xf + l2Penalty*m.Weights[c][f])
					m.Weights[c][f] -= delta
					if math.Abs(delta) > maxUpdate {
						maxUpdate = math.Abs(delta)
					}
				}
			}
		}

		if maxUpdate < convergenceTol {
			break
		}
	}

	return m
}

// PredictProba returns the class probability distribution for one feature
// vector, in Classes order.
func (m *LinearModel) PredictProba(x []float64) []float64 {
	scores := make([]float64, len(m.Classes))
	for c := range m.Classes {
		score := m.Intercept[c]
		weights := m.Weights[c]
		for f, xf := range x {
			if xf != 0 && f < len(weights) {
				score += weights[f] * xf
			}
		}
		scores[c] = score
	}
	return softmax(scores)
}

// Predict returns the most probable class and its probability.
func (m *LinearModel) Predict(x []float64) (string, float64) {
	probs := m.PredictProba(x)
	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return m.Classes[best], probs[best]
}

func softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}

	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - maxScore)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func uniqueSorted(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
