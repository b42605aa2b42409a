package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/x448/float16"
)

// encodeField serialises field as little-endian IEEE 754 values, either
// binary32 or, when half is set, binary16. Values outside the binary16
// range saturate to ±Inf.
func encodeField(field []float32, half bool) []byte {
	if half {
		out := make([]byte, 0, len(field)*dumpFloat16Bytes)
		for _, v := range field {
			out = binary.LittleEndian.AppendUint16(out, float16.Fromfloat32(v).Bits())
		}
		return out
	}
	out := make([]byte, 0, len(field)*dumpFloat32Bytes)
	for _, v := range field {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}

// writeDump writes the encoded field to w.
func writeDump(w io.Writer, field []float32, half bool) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(encodeField(field, half)); err != nil {
		return err
	}
	return bw.Flush()
}

// writeDumpFile writes the encoded field to path.
func writeDumpFile(path string, field []float32, half bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dump: %w", err)
	}
	if err := writeDump(f, field, half); err != nil {
		f.Close()
		return fmt.Errorf("writing dump %q: %w", path, err)
	}
	return f.Close()
}
