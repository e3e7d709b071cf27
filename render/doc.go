// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render is the render stage of the brush pipeline.
//
// # Targets
//
// A Target describes the surface brush strokes are drawn into. Only its
// dimensions and pixel format matter to configuration building; Info
// captures them as a comparable value. PixmapTarget is a CPU-backed
// target over *image.RGBA.
//
// # Renderers
//
//   - Uploader: uploads the vertex buffers of a pipeline.Batch to a GPU
//     device through the wgpu HAL. The host application owns the device
//     and issues the draw call.
//   - SoftwareRenderer: rasterizes batches into a PixmapTarget on the
//     CPU, evaluating the fixed-function blend state of the batch's blend
//     mode. Used for previews and tests.
//
// Example:
//
//	target := render.NewPixmapTarget(512, 512)
//	r := render.NewSoftwareRenderer(target, color.Black)
//	p, err := pipeline.New(cfg, pipeline.WithRenderer(r))
package render
