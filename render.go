package main

import "math"

// slicePixels converts rows into RGBA grey-scale pixels. Brightness is the
// magnitude of each value relative to the largest magnitude in the slice.
func slicePixels(rows [][]float32) []byte {
	peak := 0.0
	for _, row := range rows {
		for _, v := range row {
			peak = math.Max(peak, math.Abs(float64(v)))
		}
	}
	var pixels []byte
	for _, row := range rows {
		for _, v := range row {
			intensity := byte(0)
			if peak > 0 {
				intensity = byte(math.Min(1, math.Abs(float64(v))/peak) * 255)
			}
			pixels = append(pixels, intensity, intensity, intensity, 255)
		}
	}
	return pixels
}
