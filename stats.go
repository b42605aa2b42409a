package main

import "gonum.org/v1/gonum/floats"

// fieldStats summarises a solved field for debug logging.
type fieldStats struct {
	Min, Max float64
	Sum      float64
	Norm     float64
}

func toFloat64(field []float32) []float64 {
	out := make([]float64, len(field))
	for i, v := range field {
		out[i] = float64(v)
	}
	return out
}

// summarize returns the extrema, sum and L2 norm of field.
func summarize(field []float32) fieldStats {
	if len(field) == 0 {
		return fieldStats{}
	}
	values := toFloat64(field)
	return fieldStats{
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		Sum:  floats.Sum(values),
		Norm: floats.Norm(values, 2),
	}
}

// residual returns the L2 distance between field and one more Jacobi sweep
// applied to it. Zero means field is a fixed point of the update.
func residual(field, source []float32, n int, delta float32) float64 {
	if len(field) == 0 {
		return 0
	}
	next := make([]float32, len(field))
	relaxSlab(field, next, source, n, delta*delta, slab{start: 0, end: n})
	return floats.Distance(toFloat64(next), toFloat64(field), 2)
}
