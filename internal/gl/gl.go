// Package gl holds the native OpenGL constants used by glcache.
//
// The values are taken from the Khronos registry so that the cache and its
// tests can be built without cgo or a live context.
package gl

// Enum is a native OpenGL enumerant.
type Enum uint32

const (
	NO_ERROR = 0
	FALSE    = 0
	TRUE     = 1

	ZERO                = 0
	ONE                 = 1
	SRC_COLOR           = 0x0300
	ONE_MINUS_SRC_COLOR = 0x0301
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
	FUNC_ADD            = 0x8006

	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	NEVER    = 0x0200
	LESS     = 0x0201
	EQUAL    = 0x0202
	LEQUAL   = 0x0203
	GREATER  = 0x0204
	NOTEQUAL = 0x0205
	GEQUAL   = 0x0206
	ALWAYS   = 0x0207

	FRONT          = 0x0404
	BACK           = 0x0405
	FRONT_AND_BACK = 0x0408
	CCW            = 0x0901

	CULL_FACE  = 0x0B44
	DEPTH_TEST = 0x0B71
	BLEND      = 0x0BE2

	UNPACK_ALIGNMENT = 0x0CF5
	PACK_ALIGNMENT   = 0x0D05

	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406

	UNSIGNED_SHORT_4_4_4_4 = 0x8033
	UNSIGNED_SHORT_5_5_5_1 = 0x8034
	UNSIGNED_SHORT_5_6_5   = 0x8363

	DEPTH_COMPONENT = 0x1902
	RED             = 0x1903
	ALPHA           = 0x1906
	RGB             = 0x1907
	RGBA            = 0x1908
	LUMINANCE       = 0x1909
	LUMINANCE_ALPHA = 0x190A
	RG              = 0x8227
	DEPTH_STENCIL   = 0x84F9

	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	EXTENSIONS               = 0x1F03
	SHADING_LANGUAGE_VERSION = 0x8B8C
	MAJOR_VERSION            = 0x821B
	MINOR_VERSION            = 0x821C
	NUM_EXTENSIONS           = 0x821D

	NEAREST                = 0x2600
	LINEAR                 = 0x2601
	NEAREST_MIPMAP_NEAREST = 0x2700
	LINEAR_MIPMAP_LINEAR   = 0x2703
	TEXTURE_MAG_FILTER     = 0x2800
	TEXTURE_MIN_FILTER     = 0x2801
	TEXTURE_WRAP_S         = 0x2802
	TEXTURE_WRAP_T         = 0x2803
	REPEAT                 = 0x2901
	CLAMP_TO_EDGE          = 0x812F
	MIRRORED_REPEAT        = 0x8370
	TEXTURE_MAX_ANISOTROPY = 0x84FE

	TEXTURE_2D = 0x0DE1
	TEXTURE0   = 0x84C0

	MAX_TEXTURE_SIZE               = 0x0D33
	MAX_RENDERBUFFER_SIZE          = 0x84E8
	MAX_TEXTURE_MAX_ANISOTROPY     = 0x84FF
	MAX_CUBE_MAP_TEXTURE_SIZE      = 0x851C
	MAX_VERTEX_ATTRIBS             = 0x8869
	MAX_TEXTURE_IMAGE_UNITS        = 0x8872
	MAX_VERTEX_TEXTURE_IMAGE_UNITS = 0x8B4C
	MAX_VERTEX_UNIFORM_VECTORS     = 0x8DFB
	MAX_VARYING_VECTORS            = 0x8DFC
	MAX_FRAGMENT_UNIFORM_VECTORS   = 0x8DFD

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STREAM_DRAW          = 0x88E0
	STATIC_DRAW          = 0x88E4
	DYNAMIC_DRAW         = 0x88E8

	FRAGMENT_SHADER             = 0x8B30
	VERTEX_SHADER               = 0x8B31
	FLOAT_VEC2                  = 0x8B50
	FLOAT_VEC3                  = 0x8B51
	FLOAT_VEC4                  = 0x8B52
	INT_VEC2                    = 0x8B53
	INT_VEC3                    = 0x8B54
	INT_VEC4                    = 0x8B55
	BOOL                        = 0x8B56
	BOOL_VEC2                   = 0x8B57
	BOOL_VEC3                   = 0x8B58
	BOOL_VEC4                   = 0x8B59
	FLOAT_MAT2                  = 0x8B5A
	FLOAT_MAT3                  = 0x8B5B
	FLOAT_MAT4                  = 0x8B5C
	SAMPLER_2D                  = 0x8B5E
	SAMPLER_CUBE                = 0x8B60
	COMPILE_STATUS              = 0x8B81
	LINK_STATUS                 = 0x8B82
	INFO_LOG_LENGTH             = 0x8B84
	ACTIVE_UNIFORMS             = 0x8B86
	ACTIVE_UNIFORM_MAX_LENGTH   = 0x8B87
	ACTIVE_ATTRIBUTES           = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH = 0x8B8A

	LOW_FLOAT    = 0x8DF0
	MEDIUM_FLOAT = 0x8DF1
	HIGH_FLOAT   = 0x8DF2

	DEPTH_STENCIL_ATTACHMENT = 0x821A
	FRAMEBUFFER_COMPLETE     = 0x8CD5
	COLOR_ATTACHMENT0        = 0x8CE0
	DEPTH_ATTACHMENT         = 0x8D00
	STENCIL_ATTACHMENT       = 0x8D20
	FRAMEBUFFER              = 0x8D40
	RENDERBUFFER             = 0x8D41

	FRAMEBUFFER_UNDEFINED                     = 0x8219
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        = 0x8CDB
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        = 0x8CDC
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56

	RGBA4             = 0x8056
	RGB5_A1           = 0x8057
	RGBA8             = 0x8058
	RGB565            = 0x8D62
	R32F              = 0x822E
	RG32F             = 0x8230
	RGB32F            = 0x8815
	RGBA32F           = 0x8814
	DEPTH_COMPONENT16 = 0x81A5
	DEPTH_COMPONENT24 = 0x81A6
	DEPTH24_STENCIL8  = 0x88F0
	STENCIL_INDEX8    = 0x8D48
)
