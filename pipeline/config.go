// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/brush/attribute"
	"github.com/gogpu/brush/gpustruct"
	"github.com/gogpu/brush/texcoord"
)

// AttributeStageConfiguration is an ordered list of attribute provider
// models. The order is the bind order of the resulting attribute buffers
// and must match the vertex shader's attribute layout.
type AttributeStageConfiguration struct {
	models []attribute.ProviderModel
}

// NewAttributeStageConfiguration returns a configuration over models in the
// given order. An empty configuration is valid. It panics on a nil model.
func NewAttributeStageConfiguration(models ...attribute.ProviderModel) AttributeStageConfiguration {
	for i, m := range models {
		if m == nil {
			panic(fmt.Sprintf("pipeline: nil attribute model at index %d", i))
		}
	}
	return AttributeStageConfiguration{models: slices.Clone(models)}
}

// Models returns a copy of the models in bind order.
func (c AttributeStageConfiguration) Models() []attribute.ProviderModel {
	return slices.Clone(c.models)
}

// Len returns the number of models.
func (c AttributeStageConfiguration) Len() int { return len(c.models) }

// Equal reports whether both configurations hold equal models in the same
// order.
func (c AttributeStageConfiguration) Equal(o AttributeStageConfiguration) bool {
	return slices.EqualFunc(c.models, o.models, func(a, b attribute.ProviderModel) bool {
		return a.Equal(b)
	})
}

// TextureMappingStageConfiguration pairs a texture coordinate provider
// model with the source texture sampled through those coordinates.
//
// The texture is a non-owning reference: it belongs to the caller, must
// outlive every pipeline built from this configuration, and is never
// modified or released by the pipeline. It is nil for color sources.
// Textures are compared by identity.
type TextureMappingStageConfiguration struct {
	model   texcoord.ProviderModel
	texture gpucontext.Texture
}

// NewTextureMappingStageConfiguration returns a configuration for model
// and texture. It panics if model is nil.
func NewTextureMappingStageConfiguration(model texcoord.ProviderModel, texture gpucontext.Texture) TextureMappingStageConfiguration {
	if model == nil {
		panic("pipeline: nil texcoord model")
	}
	return TextureMappingStageConfiguration{model: model, texture: texture}
}

// Model returns the texture coordinate provider model.
func (c TextureMappingStageConfiguration) Model() texcoord.ProviderModel { return c.model }

// Texture returns the source texture, or nil.
func (c TextureMappingStageConfiguration) Texture() gpucontext.Texture { return c.texture }

// Equal reports whether both configurations have equal models and refer to
// the same texture.
func (c TextureMappingStageConfiguration) Equal(o TextureMappingStageConfiguration) bool {
	if (c.model == nil) != (o.model == nil) {
		return false
	}
	if c.model != nil && !c.model.Equal(o.model) {
		return false
	}
	return c.texture == o.texture
}

// Configuration is the complete, immutable description of a brush
// pipeline: the attribute stage, the texture mapping stage, the blend mode
// and the source type. One configuration is built per stroke session and
// reused for every batch of that stroke.
type Configuration struct {
	attributes     AttributeStageConfiguration
	textureMapping TextureMappingStageConfiguration
	blendMode      BlendMode
	sourceType     SourceType
}

// NewConfiguration assembles a configuration. It has no side effects.
func NewConfiguration(attributes AttributeStageConfiguration, textureMapping TextureMappingStageConfiguration,
	blendMode BlendMode, sourceType SourceType) Configuration {
	return Configuration{
		attributes:     attributes,
		textureMapping: textureMapping,
		blendMode:      blendMode,
		sourceType:     sourceType,
	}
}

// AttributeStage returns the attribute stage configuration.
func (c Configuration) AttributeStage() AttributeStageConfiguration { return c.attributes }

// TextureMappingStage returns the texture mapping stage configuration.
func (c Configuration) TextureMappingStage() TextureMappingStageConfiguration {
	return c.textureMapping
}

// BlendMode returns the blend mode.
func (c Configuration) BlendMode() BlendMode { return c.blendMode }

// SourceType returns the source type.
func (c Configuration) SourceType() SourceType { return c.sourceType }

// Equal reports structural equality.
func (c Configuration) Equal(o Configuration) bool {
	return c.blendMode == o.blendMode &&
		c.sourceType == o.sourceType &&
		c.attributes.Equal(o.attributes) &&
		c.textureMapping.Equal(o.textureMapping)
}

// Structs returns the record layouts bound by a pipeline built from c:
// the built-in vertex struct followed by one struct per attribute model.
func (c Configuration) Structs() []gpustruct.Struct {
	structs := make([]gpustruct.Struct, 0, 1+len(c.attributes.models))
	structs = append(structs, gpustruct.Vertex)
	for _, m := range c.attributes.models {
		structs = append(structs, m.Struct())
	}
	return structs
}

// Layouts returns one vertex buffer layout per struct returned by Structs.
// Shader locations are assigned consecutively across buffers, so the
// built-in position and texcoord use locations 0 and 1 and attribute
// fields follow in configuration order.
func (c Configuration) Layouts() []gputypes.VertexBufferLayout {
	return gpustruct.Layouts(c.Structs()...)
}

// String returns a compact description used in logs.
func (c Configuration) String() string {
	names := make([]string, len(c.attributes.models))
	for i, m := range c.attributes.models {
		names[i] = m.Struct().Name()
	}
	return fmt.Sprintf("pipeline.Configuration{attributes=[%s], texcoord=%T, texture=%t, blend=%v, source=%v}",
		strings.Join(names, " "), c.textureMapping.model, c.textureMapping.texture != nil, c.blendMode, c.sourceType)
}
