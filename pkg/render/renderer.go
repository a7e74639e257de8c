package render

import (
	"embed"
	"fmt"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-duck/internal/openglhelper"
	"github.com/leterax/go-duck/pkg/config"
	"github.com/leterax/go-duck/pkg/controls"
	"github.com/leterax/go-duck/pkg/game"
	"github.com/leterax/go-duck/pkg/input"
	"github.com/sirupsen/logrus"
)

//go:embed shaders/*.glsl
var shaders embed.FS

// titleSeparator joins overlay lines in the window title.
const titleSeparator = " | "

// Renderer handles rendering logic and game loop
type Renderer struct {
	log    *logrus.Logger
	window *openglhelper.Window
	camera *Camera
	world  *game.World
	cursor *cursor

	shader *openglhelper.Shader
	ground *openglhelper.Mesh
	body   *openglhelper.Mesh
	beak   *openglhelper.Mesh

	keys []input.Key

	// Timing
	lastFrameTime float64
}

// cursor adapts the window to controls.Cursor. Every mode change resets
// mouse tracking so the jump caused by re-centering is not seen as motion.
type cursor struct {
	window *openglhelper.Window
	mouse  *input.Mouse
}

func (c *cursor) SetCursorGrabMode(mode controls.GrabMode) {
	c.window.SetCursorConfined(mode == controls.GrabConfined)
	c.resetTracking()
}

func (c *cursor) SetCursorVisible(visible bool) {
	c.window.SetCursorVisible(visible)
	c.resetTracking()
}

func (c *cursor) resetTracking() {
	if c.mouse != nil {
		c.mouse.ResetTracking()
	}
}

// NewRenderer opens the window and builds the world described by cfg
func NewRenderer(cfg config.Config, log *logrus.Logger) (*Renderer, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}

	// Create window
	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	log.Infof("OpenGL version: %s", openglhelper.GLVersion())

	r := &Renderer{
		log:    log,
		window: window,
		camera: NewCamera(CameraOffset, cfg.Window.Width, cfg.Window.Height),
		cursor: &cursor{window: window},
		keys:   bindings.Keys(),
	}

	r.world = game.New(log, game.Options{
		Duck:      cfg.DuckTunables(),
		Bindings:  bindings,
		Cursor:    r.cursor,
		Text:      window,
		Separator: titleSeparator,
	})
	r.cursor.mouse = r.world.Mouse

	// Set up callbacks
	window.GLFWWindow().SetCursorPosCallback(r.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	// Load shader
	shader, err := openglhelper.LoadShader(shaders, "shaders/vert.glsl", "shaders/frag.glsl")
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader

	r.ground = boxMesh(game.Ground, GroundColor)
	r.body = boxMesh(game.DuckShape, DuckColor)
	r.beak = openglhelper.NewBox(mgl32.Vec3{-0.15, 1.1, -0.8}, mgl32.Vec3{0.15, 1.3, -0.5}, BeakColor)

	r.lastFrameTime = glfw.GetTime()
	return r, nil
}

func boxMesh(bb cube.BBox, color mgl32.Vec3) *openglhelper.Mesh {
	return openglhelper.NewBox(bb.Min(), bb.Max(), color)
}

// World returns the simulated world
func (r *Renderer) World() *game.World {
	return r.world
}

// render renders the scene
func (r *Renderer) render() {
	r.window.Clear(ClearColor)

	r.shader.Use()

	// Set up view and projection matrices
	r.shader.SetMat4("view", r.camera.ViewMatrix())
	r.shader.SetMat4("projection", r.camera.ProjectionMatrix())

	// Set up lighting parameters
	r.shader.SetVec3("viewPos", r.camera.Position())
	r.shader.SetVec3("lightPos", LightPos)
	r.shader.SetVec3("lightColor", LightColor)
	r.shader.SetFloat("ambientStrength", AmbientStrength)

	r.ground.Draw(r.shader, mgl32.Ident4())

	duck := r.world.DuckTransform()
	r.body.Draw(r.shader, duck)
	r.beak.Draw(r.shader, duck)
}

// heldKeys polls every bound key
func (r *Renderer) heldKeys() map[input.Key]bool {
	held := make(map[input.Key]bool, len(r.keys))
	for _, k := range r.keys {
		if r.window.GetKeyState(glfwKey(k)) != glfw.Release {
			held[k] = true
		}
	}
	return held
}

// Run starts the main rendering loop. It returns ActionTerminate when the
// terminate key was pressed and ActionNone when the window was closed.
func (r *Renderer) Run() controls.Action {
	for !r.window.ShouldClose() {
		// Calculate delta time
		currentTime := glfw.GetTime()
		dt := time.Duration((currentTime - r.lastFrameTime) * float64(time.Second))
		r.lastFrameTime = currentTime

		r.window.PollEvents()

		if r.world.Tick(dt, r.heldKeys()) == controls.ActionTerminate {
			r.log.Info("terminate key pressed, exiting")
			return controls.ActionTerminate
		}

		r.camera.Follow(r.world.DuckTransform())
		r.render()
		r.window.SwapBuffers()
	}
	r.log.Info("window closed")
	return controls.ActionNone
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	r.ground.Delete()
	r.body.Delete()
	r.beak.Delete()
	r.shader.Delete()

	// Close window
	r.window.Close()
}

// Callback functions
func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.world.Mouse.CursorMoved(xpos, ypos)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.camera.HandleMouseScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}
