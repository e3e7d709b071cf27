// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package attribute

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/brush/gpustruct"
)

// ErrMisalignedData is returned when a buffer length is not a multiple of
// the record size of its struct.
var ErrMisalignedData = errors.New("attribute: buffer length is not a multiple of struct size")

// Data is a buffer of vertex attribute records laid out as Struct.
// Data is immutable once created; the byte slice must not be modified.
type Data struct {
	gpuStruct gpustruct.Struct
	data      []byte
}

// NewData wraps data as records of s. The slice is used without copying.
func NewData(s gpustruct.Struct, data []byte) (Data, error) {
	if s.Size() == 0 {
		return Data{}, fmt.Errorf("attribute: struct %q has zero size", s.Name())
	}
	if uint64(len(data))%s.Size() != 0 {
		return Data{}, fmt.Errorf("%w: %d bytes, %s is %d bytes", ErrMisalignedData, len(data), s.Name(), s.Size())
	}
	return Data{gpuStruct: s, data: data}, nil
}

// Struct returns the record layout.
func (d Data) Struct() gpustruct.Struct { return d.gpuStruct }

// Bytes returns the raw buffer. Callers must not modify it.
func (d Data) Bytes() []byte { return d.data }

// Len returns the buffer length in bytes.
func (d Data) Len() int { return len(d.data) }

// Records returns the number of records in the buffer.
func (d Data) Records() int {
	if d.gpuStruct.Size() == 0 {
		return 0
	}
	return len(d.data) / int(d.gpuStruct.Size()) //nolint:gosec // struct sizes are small
}

// Record returns the bytes of record i.
func (d Data) Record(i int) []byte {
	size := int(d.gpuStruct.Size()) //nolint:gosec // struct sizes are small
	return d.data[i*size : (i+1)*size]
}

// Float32 returns component c of field name in record i.
// It panics if the field does not exist.
func (d Data) Float32(i int, name string, c int) float32 {
	return math.Float32frombits(d.Uint32(i, name, c))
}

// Uint32 returns the 32-bit component c of field name in record i.
// It panics if the field does not exist.
func (d Data) Uint32(i int, name string, c int) uint32 {
	f := d.field(name)
	off := int(f.Offset) + 4*c //nolint:gosec // struct sizes are small
	return binary.LittleEndian.Uint32(d.Record(i)[off:])
}

// Unorm8 returns byte component c of field name in record i.
// It panics if the field does not exist.
func (d Data) Unorm8(i int, name string, c int) uint8 {
	f := d.field(name)
	return d.Record(i)[int(f.Offset)+c] //nolint:gosec // struct sizes are small
}

func (d Data) field(name string) gpustruct.Field {
	f, ok := d.gpuStruct.Field(name)
	if !ok {
		panic(fmt.Sprintf("attribute: struct %s has no field %q", d.gpuStruct.Name(), name))
	}
	return f
}

// recordWriter packs per-quad records into a buffer, repeating each record
// once per quad vertex.
type recordWriter struct {
	s      gpustruct.Struct
	buf    []byte
	record []byte
}

func newRecordWriter(s gpustruct.Struct, quads int) *recordWriter {
	size := int(s.Size()) //nolint:gosec // struct sizes are small
	return &recordWriter{
		s:      s,
		buf:    make([]byte, 0, quads*geomVertices*size),
		record: make([]byte, size),
	}
}

func (w *recordWriter) offset(name string) int {
	f, ok := w.s.Field(name)
	if !ok {
		panic(fmt.Sprintf("attribute: struct %s has no field %q", w.s.Name(), name))
	}
	return int(f.Offset) //nolint:gosec // struct sizes are small
}

func (w *recordWriter) putFloat32(name string, v ...float32) {
	off := w.offset(name)
	for i, x := range v {
		binary.LittleEndian.PutUint32(w.record[off+4*i:], math.Float32bits(x))
	}
}

func (w *recordWriter) putUint32(name string, v uint32) {
	binary.LittleEndian.PutUint32(w.record[w.offset(name):], v)
}

func (w *recordWriter) putBytes(name string, v ...uint8) {
	copy(w.record[w.offset(name):], v)
}

// emit appends the current record once per quad vertex.
func (w *recordWriter) emit() {
	for range geomVertices {
		w.buf = append(w.buf, w.record...)
	}
}

func (w *recordWriter) data() Data {
	return Data{gpuStruct: w.s, data: w.buf}
}
