package reembed

import (
	"math"

	"github.com/m2comLLM/llmtest/core"
)

// NormalizeVector scales v to unit length so the store's dot product is
// cosine similarity. A zero vector stays zero. The input is not modified.
func NormalizeVector(v []float32) core.Vector {
	if len(v) == 0 {
		return core.Vector{}
	}

	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	out := make(core.Vector, len(v))
	if sum == 0 {
		return out
	}

	inv := 1 / math.Sqrt(sum)
	for i, x := range v {
		out[i] = float32(float64(x) * inv)
	}
	return out
}
