package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestEncodeFieldFloat32(t *testing.T) {
	t.Parallel()
	field := []float32{1, -0.5, float32(-1) / 6}
	data := encodeField(field, false)
	require.Len(t, data, len(field)*dumpFloat32Bytes)
	for i, want := range field {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		assert.Equal(t, want, got)
	}
}

func TestEncodeFieldFloat16(t *testing.T) {
	t.Parallel()
	data := encodeField([]float32{1, -0.5, 2}, true)
	assert.Equal(t, []byte{0x00, 0x3c, 0x00, 0xb8, 0x00, 0x40}, data)

	decoded := float16.Frombits(binary.LittleEndian.Uint16(data[2:])).Float32()
	assert.Equal(t, float32(-0.5), decoded)
}

func TestWriteDumpFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "field.bin")
	field := newPointSource(3)
	require.NoError(t, writeDumpFile(path, field, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(encodeField(field, false), data))
}

func TestWriteDumpFileBadPath(t *testing.T) {
	t.Parallel()
	err := writeDumpFile(filepath.Join(t.TempDir(), "missing", "field.bin"), nil, true)
	assert.Error(t, err)
}
