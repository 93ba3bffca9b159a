package glcache

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// Texture owns a native 2D texture and its sampling parameters.
type Texture struct {
	noCopy noCopy
	ctx    *Context
	id     uint32

	width, height int
	format        TextureFormat
	kind          TextureKind

	wrap        TextureWrap
	filter      FilterMode
	mipmaps     bool
	anisotropy  int
	flipY       bool
	premultiply bool
}

// ID returns the native id, or 0 for a nil or deleted texture.
func (t *Texture) ID() uint32 {
	if t == nil {
		return 0
	}
	return t.id
}

// Size returns the dimensions of level 0.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Format returns the pixel format of the last upload.
func (t *Texture) Format() TextureFormat { return t.format }

// Kind returns the component type of the last upload.
func (t *Texture) Kind() TextureKind { return t.kind }

// Set allocates level 0 and uploads data, which may be nil to leave the
// storage undefined (render targets). Rows are uploaded bottom to top.
func (t *Texture) Set(width, height int, format TextureFormat, kind TextureKind, data []byte) {
	if data != nil {
		if need := width * height * bytesPerPixel(format, kind); len(data) < need {
			panic(fmt.Sprintf("glcache: texture data is %d bytes, %dx%d %s/%s needs %d", len(data), width, height, format, kind, need))
		}
	}
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}

	t.ctx.bindForUpload(t)
	t.ctx.driver.TexImage2D(gl.TEXTURE_2D, 0, internalFormat(format, kind), int32(width), int32(height), format.GL(), kind.GL(), ptr)
	t.width, t.height = width, height
	t.format, t.kind = format, kind
	t.applyParams()
}

// SetImage uploads img as RGBA8. Images larger than the device's
// MaxTextureSize are scaled down to fit, keeping the aspect ratio. The
// flip and premultiply settings apply.
func (t *Texture) SetImage(img image.Image) {
	b := img.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), t.ctx.caps.MaxTextureSize)
	r := image.Rect(0, 0, w, h)

	var dst draw.Image
	var pix []byte
	if t.premultiply {
		rgba := image.NewRGBA(r)
		dst, pix = rgba, rgba.Pix
	} else {
		nrgba := image.NewNRGBA(r)
		dst, pix = nrgba, nrgba.Pix
	}

	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, r, img, b.Min, draw.Src)
	} else {
		t.ctx.log.Debug("glcache: scaling texture", "from", b.Size(), "to", r.Size())
		draw.CatmullRom.Scale(dst, r, img, b, draw.Src, nil)
	}
	if t.flipY {
		FlipRows(pix, w*4)
	}
	t.Set(w, h, FormatRGBA, TexUnsignedByte, pix)
}

// fitSize scales w×h down so neither side exceeds limit. A limit of 0
// means unknown.
func fitSize(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

// FlipRows reverses the order of the rows of pix in place. A stride of 0
// or less leaves pix unchanged.
func FlipRows(pix []byte, stride int) {
	if stride <= 0 {
		return
	}
	tmp := make([]byte, stride)
	for top, bottom := 0, len(pix)-stride; top < bottom; top, bottom = top+stride, bottom-stride {
		copy(tmp, pix[top:top+stride])
		copy(pix[top:top+stride], pix[bottom:bottom+stride])
		copy(pix[bottom:bottom+stride], tmp)
	}
}

// SetWrap sets the wrap mode for both texture coordinates.
func (t *Texture) SetWrap(w TextureWrap) {
	t.wrap = w
	t.update()
}

// SetFilter sets the minification and magnification filter.
func (t *Texture) SetFilter(f FilterMode) {
	t.filter = f
	t.update()
}

// SetMipmaps enables mipmap generation on upload.
func (t *Texture) SetMipmaps(enabled bool) {
	t.mipmaps = enabled
	t.update()
}

// SetAnisotropy sets the anisotropic filtering level. It is clamped to the
// device maximum and ignored without the extension.
func (t *Texture) SetAnisotropy(n int) {
	t.anisotropy = n
	t.update()
}

// SetFlipY makes SetImage upload rows bottom to top.
func (t *Texture) SetFlipY(flip bool) { t.flipY = flip }

// SetPremultiplyAlpha makes SetImage upload premultiplied color.
func (t *Texture) SetPremultiplyAlpha(premultiply bool) { t.premultiply = premultiply }

// update re-applies parameters once storage exists.
func (t *Texture) update() {
	if t.width == 0 || t.id == 0 {
		return
	}
	t.ctx.bindForUpload(t)
	t.applyParams()
}

// applyParams expects t to be bound.
func (t *Texture) applyParams() {
	d := t.ctx.driver
	d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(t.wrap.GL()))
	d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(t.wrap.GL()))
	d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(t.filter.GL()))
	d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(t.filter.minGL(t.mipmaps)))
	if limit := t.ctx.caps.MaxAnisotropy; t.anisotropy > 0 && limit > 0 {
		d.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, float32(min(t.anisotropy, limit)))
	}
	if t.mipmaps {
		d.GenerateMipmap(gl.TEXTURE_2D)
	}
}

func internalFormat(format TextureFormat, kind TextureKind) Enum {
	if format == FormatDepth {
		if kind == TexUnsignedShort {
			return gl.DEPTH_COMPONENT16
		}
		return gl.DEPTH_COMPONENT24
	}
	if kind == TexFloat {
		switch format.Channels() {
		case 4:
			return gl.RGBA32F
		case 3:
			return gl.RGB32F
		case 2:
			return gl.RG32F
		default:
			return gl.R32F
		}
	}
	return format.GL()
}

func bytesPerPixel(format TextureFormat, kind TextureKind) int {
	switch kind {
	case TexUnsignedShort565, TexUnsignedShort4444, TexUnsignedShort5551:
		return 2
	case TexUnsignedShort:
		return 2 * format.Channels()
	case TexFloat, TexDepthComponent:
		return 4 * format.Channels()
	}
	return format.Channels()
}

// Delete releases the texture. It is safe to call more than once.
func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	t.ctx.forgetTexture(t.id)
	t.ctx.driver.DeleteTexture(t.id)
	t.id = 0
}
