package main

import (
	"bufio"
	"fmt"
	"io"
)

// writeSlice prints rows as fixed-point values, one line per row. Every value
// is followed by a single space, including the last one in a row.
func writeSlice(w io.Writer, rows [][]float32) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for _, v := range row {
			fmt.Fprintf(bw, "%.*f ", slicePrecision, v)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
