package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsets(t *testing.T) {
	got := Offsets(3)
	assert.Len(t, got, MaxCubes)
	assert.InDelta(t, -1.6, got[0][0], eps)
	assert.InDelta(t, 0, got[1][0], eps)
	assert.InDelta(t, 1.6, got[2][0], eps)
	assert.Equal(t, [3]float32{}, got[3], "padding")

	assert.Equal(t, [3]float32{}, Offsets(1)[0])
	assert.Len(t, Offsets(10), MaxCubes)
}

func TestChecker(t *testing.T) {
	img := Checker(16, 4)
	assert.Equal(t, 16, img.Bounds().Dx())

	a := img.NRGBAAt(0, 0)
	assert.Equal(t, a, img.NRGBAAt(3, 3))
	assert.NotEqual(t, a, img.NRGBAAt(4, 0))
	assert.Equal(t, a, img.NRGBAAt(4, 4))
	assert.Equal(t, uint8(0xFF), img.NRGBAAt(9, 2).A)

	// More cells than pixels still alternates per pixel.
	tiny := Checker(2, 8)
	assert.NotEqual(t, tiny.NRGBAAt(0, 0), tiny.NRGBAAt(1, 0))
	assert.IsType(t, color.NRGBA{}, tiny.At(0, 0))
}

func TestCubeMesh(t *testing.T) {
	assert.Len(t, cubeVertices, 24*vertexStride)
	for _, i := range cubeIndices {
		assert.Less(t, int(i), 24)
	}
	// Every face is two triangles over its own four vertices.
	for face := 0; face < 6; face++ {
		base := uint16(face * 4)
		for _, i := range cubeIndices[face*6 : face*6+6] {
			assert.GreaterOrEqual(t, i, base)
			assert.Less(t, i, base+4)
		}
	}
}
