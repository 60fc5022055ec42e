package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/platform"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// glTexture is the backend-private handle stored in Texture.InternalData.
type glTexture struct {
	id uint32
}

// glMesh is the backend-private handle stored in Mesh.InternalData.
type glMesh struct {
	vao uint32
	vbo uint32
	ebo uint32
}

// OpenGLRenderer renders through a 4.1 core profile context owned by the
// platform window. All calls must happen on the main OS thread.
type OpenGLRenderer struct {
	platform *platform.Platform

	program          uint32
	uniformLocations map[string]int32
}

func New(p *platform.Platform) *OpenGLRenderer {
	return &OpenGLRenderer{
		platform:         p,
		uniformLocations: make(map[string]int32),
	}
}

func (r *OpenGLRenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		err := fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
		core.LogError(err.Error())
		return err
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	core.LogInfo("OpenGL version %s", version)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		core.LogError(err.Error())
		return err
	}
	r.program = program
	gl.UseProgram(r.program)

	gl.Viewport(0, 0, int32(appWidth), int32(appHeight))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	return nil
}

func (r *OpenGLRenderer) Shutdown() error {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	return nil
}

func (r *OpenGLRenderer) Resized(width, height uint16) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *OpenGLRenderer) BeginFrame(deltaTime float64) error {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	return nil
}

func (r *OpenGLRenderer) EndFrame(deltaTime float64) error {
	if r.platform != nil && r.platform.Window != nil {
		r.platform.Window.SwapBuffers()
	}
	return nil
}

func (r *OpenGLRenderer) TextureCreate(pixels []uint8, texture *resources.Texture) error {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// Wrapping and filtering parameters for all scene textures.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	switch texture.ChannelCount {
	case 3:
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(texture.Width), int32(texture.Height),
			0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	case 4:
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(texture.Width), int32(texture.Height),
			0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	default:
		gl.BindTexture(gl.TEXTURE_2D, 0)
		gl.DeleteTextures(1, &id)
		return core.ErrUnsupportedChannelCount
	}

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	texture.InternalData = &glTexture{id: id}
	return nil
}

func (r *OpenGLRenderer) TextureDestroy(texture *resources.Texture) {
	if handle, ok := texture.InternalData.(*glTexture); ok && handle.id != 0 {
		gl.DeleteTextures(1, &handle.id)
		handle.id = 0
	}
	texture.InternalData = nil
}

func (r *OpenGLRenderer) TextureBindUnit(unit uint32, texture *resources.Texture) {
	handle, ok := texture.InternalData.(*glTexture)
	if !ok {
		core.LogWarn("texture '%s' has no GPU handle, skipping bind", texture.Tag)
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, handle.id)
}

func (r *OpenGLRenderer) MeshCreate(config *resources.GeometryConfig, mesh *resources.Mesh) error {
	handle := &glMesh{}

	// Flatten interleaved position/normal/texcoord vertices.
	data := make([]float32, 0, len(config.Vertices)*8)
	for _, v := range config.Vertices {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Texcoord.X, v.Texcoord.Y)
	}

	gl.GenVertexArrays(1, &handle.vao)
	gl.BindVertexArray(handle.vao)

	gl.GenBuffers(1, &handle.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, handle.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &handle.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, handle.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(config.Indices)*4, gl.Ptr(config.Indices), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	mesh.IndexCount = uint32(len(config.Indices))
	mesh.InternalData = handle
	return nil
}

func (r *OpenGLRenderer) MeshDestroy(mesh *resources.Mesh) {
	if handle, ok := mesh.InternalData.(*glMesh); ok {
		gl.DeleteBuffers(1, &handle.ebo)
		gl.DeleteBuffers(1, &handle.vbo)
		gl.DeleteVertexArrays(1, &handle.vao)
	}
	mesh.InternalData = nil
}

func (r *OpenGLRenderer) MeshDraw(mesh *resources.Mesh) {
	handle, ok := mesh.InternalData.(*glMesh)
	if !ok {
		core.LogWarn("mesh '%s' has no GPU handle, skipping draw", mesh.Kind)
		return
	}
	gl.BindVertexArray(handle.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(mesh.IndexCount), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (r *OpenGLRenderer) uniformLocation(name string) int32 {
	if loc, ok := r.uniformLocations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	if loc < 0 {
		core.LogWarn("uniform '%s' not found in shader program", name)
	}
	r.uniformLocations[name] = loc
	return loc
}

func (r *OpenGLRenderer) SetUniformMat4(name string, value math.Mat4) {
	gl.UniformMatrix4fv(r.uniformLocation(name), 1, false, &value.Data[0])
}

func (r *OpenGLRenderer) SetUniformVec2(name string, value math.Vec2) {
	gl.Uniform2f(r.uniformLocation(name), value.X, value.Y)
}

func (r *OpenGLRenderer) SetUniformVec3(name string, value math.Vec3) {
	gl.Uniform3f(r.uniformLocation(name), value.X, value.Y, value.Z)
}

func (r *OpenGLRenderer) SetUniformVec4(name string, value math.Vec4) {
	gl.Uniform4f(r.uniformLocation(name), value.X, value.Y, value.Z, value.W)
}

func (r *OpenGLRenderer) SetUniformFloat(name string, value float32) {
	gl.Uniform1f(r.uniformLocation(name), value)
}

func (r *OpenGLRenderer) SetUniformInt(name string, value int32) {
	gl.Uniform1i(r.uniformLocation(name), value)
}

func (r *OpenGLRenderer) SetUniformBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(r.uniformLocation(name), v)
}
