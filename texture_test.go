package glcache

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glcache/internal/gl"
)

func texParam(pname Enum, param Enum) string {
	return fmt.Sprintf("TexParameteri(%#x, %#x)", uint32(pname), int32(param))
}

func TestTextureSet(t *testing.T) {
	c, d := newTestContext()
	tex := c.NewTexture()

	tex.Set(4, 2, FormatRGBA, TexUnsignedByte, make([]byte, 4*2*4))

	w, h := tex.Size()
	assert.Equal(t, []int{4, 2}, []int{w, h})
	assert.Equal(t, FormatRGBA, tex.Format())
	assert.Equal(t, TexUnsignedByte, tex.Kind())
	assert.Equal(t, []string{
		"ActiveTexture(0)",
		fmt.Sprintf("BindTexture(%d)", tex.ID()),
		fmt.Sprintf("TexImage2D(%#x, 4x2, %#x, %#x)", uint32(gl.RGBA), uint32(gl.RGBA), uint32(gl.UNSIGNED_BYTE)),
		texParam(gl.TEXTURE_WRAP_S, gl.REPEAT),
		texParam(gl.TEXTURE_WRAP_T, gl.REPEAT),
		texParam(gl.TEXTURE_MAG_FILTER, gl.LINEAR),
		texParam(gl.TEXTURE_MIN_FILTER, gl.LINEAR),
	}, d.calls)
	assert.Equal(t, tex.ID(), c.CurrentTexture(0))
}

func TestTextureSetChecksDataSize(t *testing.T) {
	c, _ := newTestContext()
	tex := c.NewTexture()

	assert.Panics(t, func() { tex.Set(2, 2, FormatRGBA, TexUnsignedByte, make([]byte, 15)) })
	assert.Panics(t, func() { tex.Set(2, 2, FormatRGBA, TexFloat, make([]byte, 16)) })
	assert.NotPanics(t, func() { tex.Set(2, 2, FormatRGB, TexUnsignedShort565, make([]byte, 8)) })
	assert.NotPanics(t, func() { tex.Set(64, 64, FormatRGBA, TexUnsignedByte, nil) })
}

func TestTextureParameters(t *testing.T) {
	c, d := newTestContext()
	tex := c.NewTexture()

	// Before the first upload parameters are only recorded.
	tex.SetAnisotropy(32)
	tex.SetMipmaps(true)
	tex.SetFilter(FilterNearest)
	assert.Empty(t, d.calls)

	tex.Set(2, 2, FormatRGBA, TexUnsignedByte, nil)
	assert.Equal(t, 1, d.count(texParam(gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_NEAREST)))
	assert.Equal(t, 1, d.count(fmt.Sprintf("TexParameterf(%#x, 16)", uint32(gl.TEXTURE_MAX_ANISOTROPY))))
	assert.Equal(t, 1, d.count("GenerateMipmap"))

	d.reset()
	tex.SetWrap(WrapClamp)
	assert.Equal(t, 0, d.count("BindTexture"), "already bound on the active unit")
	assert.Equal(t, 1, d.count(texParam(gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)))
}

func TestTextureAnisotropyNeedsExtension(t *testing.T) {
	d := newMockDriver()
	d.extensions = nil
	c := New(d).Init()
	d.reset()

	tex := c.NewTexture()
	tex.SetAnisotropy(8)
	tex.Set(1, 1, FormatRGBA, TexUnsignedByte, nil)
	assert.Equal(t, 0, d.count("TexParameterf"))
}

func TestTextureSetImageScalesToLimit(t *testing.T) {
	c, d := newTestContext()
	tex := c.NewTexture()

	img := image.NewNRGBA(image.Rect(0, 0, 128, 32))
	tex.SetImage(img)

	w, h := tex.Size()
	assert.Equal(t, []int{64, 16}, []int{w, h})
	assert.Equal(t, 1, d.count(fmt.Sprintf("TexImage2D(%#x, 64x16,", uint32(gl.RGBA))))

	small := image.NewRGBA(image.Rect(0, 0, 8, 8))
	tex.SetFlipY(true)
	tex.SetPremultiplyAlpha(true)
	tex.SetImage(small)
	w, h = tex.Size()
	assert.Equal(t, []int{8, 8}, []int{w, h})
}

func TestTextureUploadKeepsUnitCache(t *testing.T) {
	c, d := newTestContext()
	a, b := c.NewTexture(), c.NewTexture()
	c.SetTexture(0, a, false)
	c.DrawArrays(DrawTriangles, 0, 3)

	b.Set(1, 1, FormatRGBA, TexUnsignedByte, nil)
	assert.Equal(t, b.ID(), c.CurrentTexture(0))

	d.reset()
	assert.True(t, c.SetTexture(0, a, false))
	assert.Equal(t, 1, d.count(fmt.Sprintf("BindTexture(%d)", a.ID())))
}

func TestTextureDelete(t *testing.T) {
	c, d := newTestContext()
	tex := c.NewTexture()
	id := tex.ID()

	tex.Delete()
	tex.Delete()
	assert.Equal(t, []string{fmt.Sprintf("DeleteTexture(%d)", id)}, d.calls)

	var nilTex *Texture
	assert.Equal(t, uint32(0), nilTex.ID())
}

func TestInternalFormat(t *testing.T) {
	tests := []struct {
		format TextureFormat
		kind   TextureKind
		want   Enum
	}{
		{FormatRGBA, TexUnsignedByte, gl.RGBA},
		{FormatRGBA, TexFloat, gl.RGBA32F},
		{FormatRGB, TexFloat, gl.RGB32F},
		{FormatLuminanceAlpha, TexFloat, gl.RG32F},
		{FormatRed, TexFloat, gl.R32F},
		{FormatAlpha, TexUnsignedByte, gl.RED},
		{FormatDepth, TexDepthComponent, gl.DEPTH_COMPONENT24},
		{FormatDepth, TexUnsignedShort, gl.DEPTH_COMPONENT16},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.format, tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, internalFormat(tt.format, tt.kind))
		})
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, limit int
		wantW, wantH int
	}{
		{100, 50, 0, 100, 50},
		{100, 50, 200, 100, 50},
		{400, 100, 200, 200, 50},
		{100, 400, 200, 50, 200},
		{1000, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		w, h := fitSize(tt.w, tt.h, tt.limit)
		assert.Equal(t, tt.wantW, w, "%dx%d limit %d", tt.w, tt.h, tt.limit)
		assert.Equal(t, tt.wantH, h, "%dx%d limit %d", tt.w, tt.h, tt.limit)
	}
}

func TestFlipRows(t *testing.T) {
	pix := []byte{1, 1, 2, 2, 3, 3}
	FlipRows(pix, 2)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, pix)

	even := []byte{1, 2, 3, 4}
	FlipRows(even, 2)
	assert.Equal(t, []byte{3, 4, 1, 2}, even)

	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	FlipRows(img.Pix, img.Stride)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))

	same := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	FlipRows(same, 0)
	FlipRows(same, -4)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, same)
}

func TestFramebuffer(t *testing.T) {
	c, d := newTestContext()
	fb := c.NewFramebuffer()
	tex := c.NewTexture()
	tex.Set(8, 8, FormatRGBA, TexUnsignedByte, nil)
	rb := c.NewRenderbuffer()
	rb.Set(TexDepthComponent, 8, 8)
	d.reset()

	fb.AttachRenderbuffer(AttachDepth, rb)
	require.NoError(t, fb.Set(tex, 0, AttachColor0))
	assert.Equal(t, fb.ID(), c.CurrentFramebuffer())
	assert.Equal(t, []string{
		fmt.Sprintf("BindFramebuffer(%d)", fb.ID()),
		fmt.Sprintf("FramebufferRenderbuffer(%#x, %d)", uint32(gl.DEPTH_ATTACHMENT), rb.ID()),
		fmt.Sprintf("FramebufferTexture2D(%#x, %d, 0)", uint32(gl.COLOR_ATTACHMENT0), tex.ID()),
		"DrawBuffers(1)",
	}, d.calls)
}

func TestFramebufferIncomplete(t *testing.T) {
	c, d := newTestContext()
	fb := c.NewFramebuffer()
	d.fbStatus = gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT

	err := fb.Check()
	var fe *FramebufferError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fb.ID(), fe.ID)
	assert.Equal(t, fmt.Sprintf("glcache: framebuffer %d incomplete: missing attachment", fb.ID()), err.Error())

	d.fbStatus = 0x1234
	assert.Contains(t, fb.Check().Error(), "status 0x1234")
}

func TestFramebufferDepthOnlyHasNoDrawBuffers(t *testing.T) {
	c, d := newTestContext()
	fb := c.NewFramebuffer()
	depth := c.NewTexture()
	depth.Set(4, 4, FormatDepth, TexDepthComponent, nil)
	d.reset()

	require.NoError(t, fb.Set(depth, 0, AttachDepth))
	assert.Equal(t, 0, d.count("DrawBuffers"))
}

func TestRenderbuffer(t *testing.T) {
	c, d := newTestContext()
	rb := c.NewRenderbuffer()

	rb.Set(TexUnsignedShort565, 32, 16)
	w, h := rb.Size()
	assert.Equal(t, []int{32, 16}, []int{w, h})
	assert.Equal(t, TexUnsignedShort565, rb.Kind())
	assert.Equal(t, rb.ID(), c.CurrentRenderbuffer())
	assert.Equal(t, 1, d.count(fmt.Sprintf("RenderbufferStorage(%#x, 32, 16)", uint32(gl.RGB565))))

	formats := map[TextureKind]Enum{
		TexDepthComponent:    gl.DEPTH_COMPONENT24,
		TexUnsignedShort:     gl.DEPTH_COMPONENT16,
		TexUnsignedShort4444: gl.RGBA4,
		TexUnsignedShort5551: gl.RGB5_A1,
		TexFloat:             gl.RGBA32F,
		TexUnsignedByte:      gl.RGBA8,
	}
	for kind, want := range formats {
		assert.Equal(t, want, renderbufferFormat(kind), kind.String())
	}
	assert.Panics(t, func() { renderbufferFormat(TextureKind(42)) })
}
