package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	title      string
	text       string

	cursorConfined bool
	cursorVisible  bool
}

// WindowOptions configures NewWindow.
type WindowOptions struct {
	Width, Height int
	Title         string
	VSync         bool
	Resizable     bool
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(opts WindowOptions) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	// Create window
	glfwWindow, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1) // Enable vsync
	} else {
		glfw.SwapInterval(0) // Disable vsync
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Configure global OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)

	if glfw.RawMouseMotionSupported() {
		glfwWindow.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	return &Window{
		glfwWindow:    glfwWindow,
		title:         opts.Title,
		cursorVisible: true,
	}, nil
}

// GLVersion returns the OpenGL version string of the current context
func GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Clear clears the screen
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close releases all resources
func (w *Window) Close() {
	glfw.Terminate()
}

// SetText shows text next to the base title. Lines are expected to be joined
// with a single-line separator since titles cannot wrap.
func (w *Window) SetText(text string) {
	if text == w.text {
		return
	}
	w.text = text
	if text == "" {
		w.glfwWindow.SetTitle(w.title)
		return
	}
	w.glfwWindow.SetTitle(w.title + " | " + text)
}

// GetKeyState returns the state of the given key
func (w *Window) GetKeyState(key glfw.Key) glfw.Action {
	return w.glfwWindow.GetKey(key)
}

// OnResize is called when the window is resized
func (w *Window) OnResize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// SetCursorConfined binds the cursor to the window or releases it
func (w *Window) SetCursorConfined(confined bool) {
	w.cursorConfined = confined
	w.glfwWindow.SetInputMode(glfw.CursorMode, CursorMode(w.cursorConfined, w.cursorVisible))
}

// SetCursorVisible shows or hides the cursor
func (w *Window) SetCursorVisible(visible bool) {
	w.cursorVisible = visible
	w.glfwWindow.SetInputMode(glfw.CursorMode, CursorMode(w.cursorConfined, w.cursorVisible))
}

// CursorMode picks the GLFW cursor mode for a grab and visibility pair.
// GLFW has no confined-but-visible mode, so that pair leaves the cursor normal.
func CursorMode(confined, visible bool) int {
	switch {
	case confined && !visible:
		return glfw.CursorDisabled
	case !visible:
		return glfw.CursorHidden
	default:
		return glfw.CursorNormal
	}
}
