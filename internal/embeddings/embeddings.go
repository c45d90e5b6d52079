package embeddings

import (
	"context"
	"errors"
	"math"
)

// Vector is a fixed-dimension embedding. All providers in this repo produce
// 384-dimension, unit-length vectors.
type Vector []float32

// Embedder converts text into an embedding vector.
type Embedder interface {
	Embed(ctx context.Context, text string) (Vector, error)
}

var (
	// ErrModelUnavailable means the underlying model/resource could not be acquired.
	ErrModelUnavailable = errors.New("embedding model unavailable")

	// ErrInference means the embedding computation itself failed.
	ErrInference = errors.New("embedding inference failed")
)

// Norm returns the L2 norm of v.
func Norm(v Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// Normalize returns v scaled to unit length. A zero vector is returned as is.
func Normalize(v Vector) Vector {
	norm := Norm(v)
	if norm == 0 {
		return v
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// Cosine returns the cosine similarity of a and b without assuming either is
// normalized. Mismatched or zero-length inputs yield 0.
func Cosine(a, b Vector) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
