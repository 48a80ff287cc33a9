package graphics

import (
	"embed"
	"fmt"
	"log/slog"
	"path"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// Unresolved is the location GL reports for a uniform name the program does not use.
// Writes to it are dropped.
const Unresolved int32 = -1

// MaxInfoLog bounds the compiler and linker diagnostics kept on errors.
const MaxInfoLog = 1024

// Stage is a programmable pipeline stage
type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("stage(0x%x)", uint32(s))
	}
}

// CompileError carries the compiler log of a stage that failed to compile
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the linker log of a program that failed to link
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// ValidateError carries the validation log of a linked program
type ValidateError struct {
	Log string
}

func (e *ValidateError) Error() string {
	return fmt.Sprintf("failed to validate program: %s", e.Log)
}

// Program represents a linked OpenGL shader program
type Program struct {
	ID       uint32
	Name     string
	uniforms map[string]int32
}

// ShaderSource returns the embedded vertex and fragment source registered under name
func ShaderSource(name string) (vertex, fragment string, err error) {
	v, err := shaderFS.ReadFile(path.Join("shaders", name+".vert"))
	if err != nil {
		return "", "", errors.Wrapf(err, "vertex shader %q", name)
	}
	f, err := shaderFS.ReadFile(path.Join("shaders", name+".frag"))
	if err != nil {
		return "", "", errors.Wrapf(err, "fragment shader %q", name)
	}
	return string(v), string(f), nil
}

// LoadProgram builds the embedded shader pair registered under name
func LoadProgram(name string) (*Program, error) {
	vertexSrc, fragmentSrc, err := ShaderSource(name)
	if err != nil {
		return nil, err
	}
	p, err := NewProgram(name, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, errors.Wrapf(err, "shader %q", name)
	}
	return p, nil
}

// NewProgram compiles both stages, links them and validates the result.
// Validation problems are logged and do not fail the build.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	vertexShader, err := CompileStage(vertexSrc, VertexStage)
	if err != nil {
		return nil, err
	}
	fragmentShader, err := CompileStage(fragmentSrc, FragmentStage)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, err
	}

	id, err := Link(vertexShader, fragmentShader)
	// shaders can be deleted after linking
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	if err != nil {
		return nil, err
	}

	p := &Program{ID: id, Name: name, uniforms: make(map[string]int32)}
	if err := p.Validate(); err != nil {
		slog.Warn("shader program did not validate", "program", name, "err", err)
	}
	return p, nil
}

// CompileStage compiles a single stage and returns its shader object
func CompileStage(source string, stage Stage) (uint32, error) {
	shader := gl.CreateShader(uint32(stage))
	if shader == 0 {
		return 0, &CompileError{Stage: stage, Log: "glCreateShader returned 0"}
	}
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		buf, written := infoLogBuffer(logLength)
		if len(buf) > 0 {
			gl.GetShaderInfoLog(shader, int32(len(buf)), written, &buf[0])
		}
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: trimInfoLog(buf, *written)}
	}
	return shader, nil
}

// Link attaches the given stages to a new program object and links it
func Link(stages ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	for _, s := range stages {
		gl.DetachShader(program, s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(program)
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}
	return program, nil
}

// Validate checks the program against the current GL state
func (p *Program) Validate() error {
	if !p.Valid() {
		return &ValidateError{Log: "program was not linked"}
	}
	gl.ValidateProgram(p.ID)

	var status int32
	gl.GetProgramiv(p.ID, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		return &ValidateError{Log: programLog(p.ID)}
	}
	return nil
}

// Valid reports whether p holds a linked program object
func (p *Program) Valid() bool {
	return p != nil && p.ID != 0
}

// Use activates the shader program
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Unuse unbinds whatever program is current
func (p *Program) Unuse() {
	gl.UseProgram(0)
}

// Uniform resolves a uniform name to its location, caching the result.
// Absent names resolve to Unresolved.
func (p *Program) Uniform(name string) int32 {
	if !p.Valid() {
		return Unresolved
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if p.uniforms == nil {
		p.uniforms = make(map[string]int32)
	}
	p.uniforms[name] = loc
	return loc
}

// SetMat4 writes a 4x4 matrix uniform. Unresolved locations are skipped.
func (p *Program) SetMat4(loc int32, m mgl32.Mat4) {
	if loc == Unresolved || !p.Valid() {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// Delete releases the program object
func (p *Program) Delete() {
	if !p.Valid() {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
	p.uniforms = nil
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	buf, written := infoLogBuffer(logLength)
	if len(buf) > 0 {
		gl.GetProgramInfoLog(program, int32(len(buf)), written, &buf[0])
	}
	return trimInfoLog(buf, *written)
}

func infoLogBuffer(logLength int32) ([]byte, *int32) {
	if logLength > MaxInfoLog {
		logLength = MaxInfoLog
	}
	if logLength < 0 {
		logLength = 0
	}
	return make([]byte, logLength), new(int32)
}

// trimInfoLog turns a driver-filled log buffer into a string, dropping the
// terminator and trailing whitespace. Drivers are allowed to report
// nothing, so an empty log gets a placeholder.
func trimInfoLog(buf []byte, written int32) string {
	n := int(written)
	if n < 0 || n > len(buf) {
		n = len(buf)
	}
	for n > 0 && (buf[n-1] == 0 || buf[n-1] == '\n' || buf[n-1] == ' ' || buf[n-1] == '\r' || buf[n-1] == '\t') {
		n--
	}
	if n == 0 {
		return "no diagnostic output"
	}
	return string(buf[:n])
}
