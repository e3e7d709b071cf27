// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/brush/attribute"
	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/pipeline"
	"github.com/gogpu/brush/random"
	"github.com/gogpu/brush/texcoord"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// recordingQueue records the data written to every buffer.
type recordingQueue struct {
	hal.Queue
	writes map[hal.Buffer][]byte
}

func (q *recordingQueue) WriteBuffer(buf hal.Buffer, offset uint64, data []byte) error {
	q.writes[buf] = bytes.Clone(data)
	return q.Queue.WriteBuffer(buf, offset, data)
}

func colorBatch(t *testing.T, blend pipeline.BlendMode, quads ...geom.Quad) pipeline.Batch {
	t.Helper()
	cfg := pipeline.NewConfiguration(
		pipeline.NewAttributeStageConfiguration(
			attribute.NewJitteredColorModel(mgl32.Vec3{0, 0, 1}, 0, 0, 0, random.NewState(1)),
		),
		pipeline.NewTextureMappingStageConfiguration(texcoord.CanonicalModel{}, nil),
		blend, pipeline.SourceColor,
	)
	p, err := pipeline.New(cfg)
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	batch, err := p.Process(quads)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return batch
}

func TestUploaderUpload(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()
	rq := &recordingQueue{Queue: queue, writes: map[hal.Buffer][]byte{}}

	u := NewUploader(device, rq, "stroke")
	batch := colorBatch(t, pipeline.BlendNormal, geom.QuadFromRect(0, 0, 1, 1), geom.QuadFromRect(2, 0, 1, 1))

	vb, err := u.Upload(batch)
	if err != nil {
		t.Fatalf("Upload() = %v", err)
	}
	if len(vb.Buffers) != 2 {
		t.Fatalf("len(Buffers) = %d, want 2", len(vb.Buffers))
	}
	if vb.VertexCount != 12 {
		t.Errorf("VertexCount = %d, want 12", vb.VertexCount)
	}
	if vb.Buffers[0].Size != 2*6*16 || vb.Buffers[1].Size != 2*6*4 {
		t.Errorf("sizes = %d, %d, want 192, 48", vb.Buffers[0].Size, vb.Buffers[1].Size)
	}
	if len(vb.Layouts) != 2 || vb.Layouts[1].Attributes[0].ShaderLocation != 2 {
		t.Errorf("Layouts = %+v, want vertex then color at location 2", vb.Layouts)
	}
	if vb.Blend != gputypes.BlendStatePremultiplied() {
		t.Errorf("Blend = %+v, want premultiplied", vb.Blend)
	}
	for i, d := range batch.Buffers() {
		if got := rq.writes[vb.Buffers[i].Buffer]; !bytes.Equal(got, d.Bytes()) {
			t.Errorf("buffer %d holds %d bytes, want batch data of %d bytes", i, len(got), d.Len())
		}
	}
	if u.Live() != 2 {
		t.Errorf("Live() = %d, want 2", u.Live())
	}

	vb.Release()
	vb.Release()
	if u.Live() != 0 {
		t.Errorf("Live() after Release = %d, want 0", u.Live())
	}
}

func TestUploaderEmptyBatch(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	u := NewUploader(device, queue, "stroke")
	vb, err := u.Upload(colorBatch(t, pipeline.BlendNormal))
	if err != nil {
		t.Fatalf("Upload() = %v", err)
	}
	if len(vb.Buffers) != 0 || vb.VertexCount != 0 {
		t.Errorf("empty batch uploaded %d buffers, %d vertices", len(vb.Buffers), vb.VertexCount)
	}
}

func TestUploaderErrors(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	u := NewUploader(device, queue, "stroke")
	_, err := u.Upload(colorBatch(t, pipeline.BlendOverlay, geom.CanonicalQuad))
	if !errors.Is(err, ErrUnsupportedBlendMode) {
		t.Errorf("Upload(overlay blend) = %v, want ErrUnsupportedBlendMode", err)
	}

	u.Release()
	_, err = u.Upload(colorBatch(t, pipeline.BlendNormal, geom.CanonicalQuad))
	if !errors.Is(err, ErrReleased) {
		t.Errorf("Upload after Release = %v, want ErrReleased", err)
	}
}

func TestGPURenderer(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	u := NewUploader(device, queue, "stroke")
	var drawn []uint32
	r := NewGPURenderer(u, func(vb *VertexBuffers) error {
		drawn = append(drawn, vb.VertexCount)
		return nil
	})

	if err := r.Render(colorBatch(t, pipeline.BlendMultiply, geom.CanonicalQuad)); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if len(drawn) != 1 || drawn[0] != 6 {
		t.Errorf("drawn = %v, want [6]", drawn)
	}
	if u.Live() != 0 {
		t.Errorf("Live() = %d, want buffers released after draw", u.Live())
	}

	wantErr := errors.New("draw failed")
	r = NewGPURenderer(u, func(*VertexBuffers) error { return wantErr })
	if err := r.Render(colorBatch(t, pipeline.BlendNormal, geom.CanonicalQuad)); !errors.Is(err, wantErr) {
		t.Errorf("Render() = %v, want draw error", err)
	}
}
