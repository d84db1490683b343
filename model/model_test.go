// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/devblok/graphics/model"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	bindings := model.VertexBindingDescriptions()
	require.Len(t, bindings, 1)
	assert.EqualValues(t, 7*4, bindings[0].Stride)

	attrs := model.VertexAttributeDescriptions()
	require.Len(t, attrs, 2)
	assert.EqualValues(t, 0, attrs[0].Offset)
	assert.EqualValues(t, 3*4, attrs[1].Offset)
	assert.EqualValues(t, 1, attrs[1].Location)
}

func TestVertexBytes(t *testing.T) {
	mesh := model.Triangle()
	data := mesh.VertexBytes()
	require.Len(t, data, 3*7*4)

	// second vertex, x coordinate
	x := math.Float32frombits(binary.LittleEndian.Uint32(data[7*4:]))
	assert.Equal(t, float32(0.5), x)
	assert.Nil(t, mesh.IndexBytes())
	assert.Nil(t, model.Mesh{}.VertexBytes())
}

func TestQuadIndices(t *testing.T) {
	mesh := model.Quad()
	data := mesh.IndexBytes()
	require.Len(t, data, 6*2)
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(data[4:]))
	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Vertices))
	}
}

func TestUniformMVP(t *testing.T) {
	u := model.NewUniform()
	assert.Equal(t, glm.Ident4(), u.MVP())

	u.Model = glm.Translate3D(1, 2, 3)
	u.Projection = glm.Scale3D(2, 2, 2)
	p := u.MVP().Mul4x1(glm.Vec4{0, 0, 0, 1})
	assert.Equal(t, glm.Vec4{2, 4, 6, 1}, p)
}
