// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command brushinfo loads a brush model, builds its pipeline
// configuration and renders a preview stroke with the software renderer.
//
// Usage:
//
//	brushinfo -brush brush.json [-width 512] [-height 256] [-quads 64] [-shader vs.wgsl] [-png out.png]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/brush"
	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/internal/brushfile"
	"github.com/gogpu/brush/model"
	"github.com/gogpu/brush/pipeline"
	"github.com/gogpu/brush/render"
	"github.com/gogpu/brush/renderinfo"
)

// batchSize is the number of quads handed to the pipeline at once.
const batchSize = 16

func main() {
	var (
		brushPath  = flag.String("brush", "", "brush model file (.json, .yaml, .toml)")
		width      = flag.Int("width", 512, "canvas width")
		height     = flag.Int("height", 256, "canvas height")
		quads      = flag.Int("quads", 64, "number of brush tips along the preview stroke")
		shaderPath = flag.String("shader", "", "WGSL vertex shader to check the buffer layout against")
		output     = flag.String("png", "", "write the preview stroke to this PNG file")
		verbose    = flag.Bool("v", false, "log per-batch diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	brush.SetLogger(log)

	if *brushPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*brushPath, *width, *height, *quads, *shaderPath, *output); err != nil {
		log.Error("brushinfo failed", "err", err)
		os.Exit(1)
	}
}

func run(brushPath string, width, height, quads int, shaderPath, output string) error {
	m, err := brushfile.LoadModel(brushPath)
	if err != nil {
		return err
	}
	textures, err := brushfile.LoadTextures(m, filepath.Dir(brushPath))
	if err != nil {
		return err
	}
	info, err := renderinfo.New(m, textures)
	if err != nil {
		return err
	}

	target := render.NewPixmapTarget(width, height)
	cfg, err := info.PipelineConfiguration(target)
	if err != nil {
		return err
	}

	fmt.Printf("version:  %v\n", m.Version())
	fmt.Printf("spline:   %v\n", info.SplineType())
	fmt.Printf("pipeline: %v\n", cfg)
	for i, l := range cfg.Layouts() {
		fmt.Printf("buffer %d: stride %d, %d attributes\n", i, l.ArrayStride, len(l.Attributes))
	}

	opts := []pipeline.Option{
		pipeline.WithRenderer(render.NewSoftwareRenderer(target, baseColor(m))),
	}
	if shaderPath != "" {
		src, err := os.ReadFile(shaderPath)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithVertexShader(string(src), ""))
	}
	var rendered int
	opts = append(opts, pipeline.WithQuadsHandler(func(q []geom.Quad) { rendered += len(q) }))

	p, err := pipeline.New(cfg, opts...)
	if err != nil {
		return err
	}
	stroke := previewStroke(m, width, height, quads)
	for start := 0; start < len(stroke); start += batchSize {
		batch, err := p.Process(stroke[start:min(start+batchSize, len(stroke))])
		if err != nil {
			return err
		}
		fmt.Printf("batch: %d quads, %d buffers\n", batch.Len(), len(batch.Buffers()))
	}
	fmt.Printf("rendered: %d quads\n", rendered)

	if output == "" {
		return nil
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, target.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// previewStroke places n brush tips along one period of a sine wave
// across the canvas, rotated along the stroke direction.
func previewStroke(m model.BrushModel, width, height, n int) []geom.Quad {
	side := math.Min(float64(height)/4, 24) * m.BaseModel().Scale
	margin := side
	w, h := float64(width), float64(height)
	amp := h/2 - side

	quads := make([]geom.Quad, n)
	for i := range quads {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := mgl64.Vec2{margin + t*(w-2*margin), h/2 + amp*math.Sin(2*math.Pi*t)}
		angle := math.Atan2(amp*2*math.Pi*math.Cos(2*math.Pi*t), w-2*margin)
		quads[i] = geom.QuadAround(c, side, angle)
	}
	return quads
}

func baseColor(m model.BrushModel) color.Color {
	v1, ok := m.(model.V1)
	if !ok {
		return color.Black
	}
	return color.NRGBA{
		R: uint8(math.Round(v1.Color[0] * 255)),
		G: uint8(math.Round(v1.Color[1] * 255)),
		B: uint8(math.Round(v1.Color[2] * 255)),
		A: uint8(math.Round(v1.Flow * 255)),
	}
}
