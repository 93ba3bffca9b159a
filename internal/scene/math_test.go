package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertMat(t *testing.T, want, got Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

func TestIdentityMul(t *testing.T) {
	m := Translate(1, 2, 3)
	assertMat(t, m, Identity().Mul(m))
	assertMat(t, m, m.Mul(Identity()))
}

func TestTranslateCompose(t *testing.T) {
	got := Translate(1, 0, 0).Mul(Translate(0, 2, 0))
	assertMat(t, Translate(1, 2, 0), got)
}

func TestRotationsAreOrthonormal(t *testing.T) {
	for _, r := range []Mat4{RotateY(0.7), RotateX(-1.3)} {
		// R * R^T = I
		var rt Mat4
		for col := 0; col < 4; col++ {
			for row := 0; row < 4; row++ {
				rt[col*4+row] = r[row*4+col]
			}
		}
		assertMat(t, Identity(), r.Mul(rt))
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	r := RotateY(math32.Pi / 2)
	// +X maps to -Z.
	x, z := r[0], r[2]
	assert.InDelta(t, 0, x, eps)
	assert.InDelta(t, -1, z, eps)
}

func TestPerspective(t *testing.T) {
	p := Perspective(Radians(90), 2, 1, 10)

	assert.InDelta(t, 0.5, p[0], eps)
	assert.InDelta(t, 1, p[5], eps)
	assert.InDelta(t, -11.0/9, p[10], eps)
	assert.Equal(t, float32(-1), p[11])
	assert.InDelta(t, -20.0/9, p[14], eps)

	// The near plane maps to -1 in NDC.
	z, w := p[10]*-1+p[14], p[11]*-1
	assert.InDelta(t, -1, z/w, eps)
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math32.Pi, Radians(180), eps)
}
