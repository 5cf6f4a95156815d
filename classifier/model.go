package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Scorer is the opaque classifier: one flattened, normalized image in,
// per-label scores out. Implementations must be safe for concurrent use
// after construction.
type Scorer interface {
	Score(input []float32) []float32
}

// artifact is the on-disk model format: a single dense layer with softmax,
// exported from the training pipeline.
type artifact struct {
	InputSize int         `json:"input_size"`
	Classes   int         `json:"classes"`
	Weights   [][]float64 `json:"weights"`
	Biases    []float64   `json:"biases"`
}

type denseModel struct {
	inputLen int
	weights  [][]float64
	biases   []float64
}

// LoadModel reads the classifier artifact once at startup. The returned
// input size is the spatial dimension the pipeline must resize uploads to.
func LoadModel(path string) (Scorer, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, 0, fmt.Errorf("parse model artifact: %w", err)
	}

	if a.InputSize <= 0 || a.Classes <= 0 {
		return nil, 0, fmt.Errorf("model artifact %s: bad dimensions %dx%d", path, a.InputSize, a.Classes)
	}
	if len(a.Weights) != a.Classes || len(a.Biases) != a.Classes {
		return nil, 0, fmt.Errorf("model artifact %s: expected %d weight rows and biases", path, a.Classes)
	}

	inputLen := a.InputSize * a.InputSize * 3
	for i, row := range a.Weights {
		if len(row) != inputLen {
			return nil, 0, fmt.Errorf("model artifact %s: weight row %d has %d values, want %d", path, i, len(row), inputLen)
		}
	}

	return &denseModel{inputLen: inputLen, weights: a.Weights, biases: a.Biases}, a.InputSize, nil
}

// Score computes softmax(Wx + b). The output sums to 1, so the max entry
// can be reported directly as a confidence.
func (m *denseModel) Score(input []float32) []float32 {
	logits := make([]float64, len(m.weights))
	for i, row := range m.weights {
		sum := m.biases[i]
		for j := 0; j < m.inputLen && j < len(input); j++ {
			sum += row[j] * float64(input[j])
		}
		logits[i] = sum
	}

	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}

	var total float64
	exps := make([]float64, len(logits))
	for i, l := range logits {
		exps[i] = math.Exp(l - max)
		total += exps[i]
	}

	scores := make([]float32, len(exps))
	for i, e := range exps {
		scores[i] = float32(e / total)
	}
	return scores
}
