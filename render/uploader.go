// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/brush"
	"github.com/gogpu/brush/pipeline"
)

// ErrReleased is returned when uploading through a released Uploader.
var ErrReleased = errors.New("render: uploader released")

// Uploader creates GPU vertex buffers for pipeline batches.
//
// The device and queue belong to the host application; the Uploader only
// creates and destroys the buffers it uploads. It is not safe for
// concurrent use.
type Uploader struct {
	device hal.Device
	queue  hal.Queue
	label  string
	log    *slog.Logger

	live     int
	released bool
}

// NewUploader returns an uploader over device and queue. Buffer labels are
// prefixed with label.
func NewUploader(device hal.Device, queue hal.Queue, label string) *Uploader {
	return &Uploader{
		device: device,
		queue:  queue,
		label:  label,
		log:    brush.Logger(),
	}
}

// VertexBuffer is one uploaded buffer of a batch.
type VertexBuffer struct {
	Buffer hal.Buffer
	Size   uint64
}

// VertexBuffers holds the GPU buffers of one batch in bind order, the
// matching layouts, and the number of vertices to draw.
type VertexBuffers struct {
	Buffers     []VertexBuffer
	Layouts     []gputypes.VertexBufferLayout
	VertexCount uint32
	Blend       gputypes.BlendState

	owner *Uploader
}

// Upload creates one vertex buffer per entry of batch.Buffers and writes
// the batch data into them. Empty batches produce no buffers.
//
// It returns ErrUnsupportedBlendMode if the batch's blend mode has no
// fixed-function blend state; those modes need a blending fragment shader
// the host has to provide.
func (u *Uploader) Upload(batch pipeline.Batch) (*VertexBuffers, error) {
	if u.released {
		return nil, ErrReleased
	}
	blend, ok := batch.BlendMode.BlendState()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedBlendMode, batch.BlendMode)
	}

	vb := &VertexBuffers{
		Layouts: batch.Layouts(),
		Blend:   blend,
		owner:   u,
	}
	if batch.Len() == 0 {
		return vb, nil
	}

	data := batch.Buffers()
	vb.VertexCount = uint32(data[0].Records()) //nolint:gosec // bounded by batch size
	for i, d := range data {
		label := fmt.Sprintf("%s_%s_%d", u.label, d.Struct().Name(), i)
		buf, err := u.createAndUploadBuffer(label, d.Bytes(),
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			vb.Release()
			return nil, err
		}
		vb.Buffers = append(vb.Buffers, VertexBuffer{Buffer: buf, Size: uint64(d.Len())})
	}
	u.log.Debug("render: batch uploaded",
		"quads", batch.Len(), "buffers", len(vb.Buffers), "vertices", vb.VertexCount)
	return vb, nil
}

func (u *Uploader) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := u.queue.WriteBuffer(buf, 0, data); err != nil {
		u.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("write %s: %w", label, err)
	}
	u.live++
	return buf, nil
}

// Live returns the number of uploaded buffers not yet released.
func (u *Uploader) Live() int { return u.live }

// Release marks the uploader as released. Buffers returned earlier must
// still be released through VertexBuffers.Release.
func (u *Uploader) Release() {
	if u.live > 0 {
		u.log.Warn("render: uploader released with live buffers", "live", u.live)
	}
	u.released = true
}

// Release destroys the buffers. It is safe to call more than once.
func (vb *VertexBuffers) Release() {
	for _, b := range vb.Buffers {
		vb.owner.device.DestroyBuffer(b.Buffer)
		vb.owner.live--
	}
	vb.Buffers = nil
}

// GPURenderer is a pipeline.Renderer that uploads every batch and hands
// the buffers to a host-provided draw function. The buffers are released
// once draw returns.
type GPURenderer struct {
	uploader *Uploader
	draw     func(*VertexBuffers) error
}

// NewGPURenderer returns a renderer uploading through u and drawing with
// draw. A nil draw only uploads.
func NewGPURenderer(u *Uploader, draw func(*VertexBuffers) error) *GPURenderer {
	return &GPURenderer{uploader: u, draw: draw}
}

// Render implements pipeline.Renderer.
func (r *GPURenderer) Render(batch pipeline.Batch) error {
	vb, err := r.uploader.Upload(batch)
	if err != nil {
		return err
	}
	defer vb.Release()
	if r.draw == nil {
		return nil
	}
	return r.draw(vb)
}

var _ pipeline.Renderer = (*GPURenderer)(nil)
