// vpaviewer is an interactive 3D viewer for FFX .vpa navmesh files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/internal/camera"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/internal/config"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/internal/logger"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/internal/window"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/math"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/vpa"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	path := flag.Arg(0)
	if path == "" {
		path, err = dialog.File().
			Filter("FFX navmesh files", "vpa").
			Title("Select a .vpa file").
			Load()
		if err != nil {
			logger.Info("no file selected, exiting")
			return
		}
	}

	mesh, err := vpa.ParseFile(path)
	if err != nil {
		logger.Error("failed to decode navmesh", zap.String("path", path), zap.Error(err))
		dialog.Message("Could not decode %s:\n%v", filepath.Base(path), err).Title("Decode error").Error()
		os.Exit(1)
	}

	counts := mesh.CountByPassability()
	logger.Info("navmesh decoded",
		zap.String("path", path),
		zap.Int("vertices", len(mesh.Verts)),
		zap.Int("triangles", len(mesh.Tris)),
		zap.Int("renderable", len(mesh.RenderableTris())),
		zap.Float32("scale", mesh.Scale),
		zap.Int("passable", counts[vpa.Passable]),
		zap.Int("blocked", counts[vpa.Blocked]),
	)

	if err := run(cfg, mesh, filepath.Base(path)); err != nil {
		logger.Fatal("viewer failed", zap.Error(err))
	}
}

func run(cfg *config.Config, mesh *vpa.Mesh, name string) error {
	win, err := window.New(window.Config{
		Title:  "VPA Viewer - " + name,
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
		VSync:  cfg.Viewer.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("OpenGL init failed: %w", err)
	}
	logger.Info("OpenGL ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	viewer, err := NewMeshViewer(mesh)
	if err != nil {
		return err
	}
	defer viewer.Close()

	cam := camera.NewOrbitCamera()
	min, max := mesh.Bounds()
	cam.FitToBounds(min.X, min.Y, min.Z, max.X, max.Y, max.Z)

	wireframe := cfg.Viewer.Wireframe
	dragging := false

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.10, 0.10, 0.12, 1.0)

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN {
					switch e.Keysym.Sym {
					case sdl.K_ESCAPE, sdl.K_q:
						return nil
					case sdl.K_TAB:
						wireframe = !wireframe
					case sdl.K_r:
						cam.FitToBounds(min.X, min.Y, min.Z, max.X, max.Y, max.Z)
					}
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float32(e.Y))
			}
		}

		// Keyboard panning
		keys := sdl.GetKeyboardState()
		var forward, right, up float32
		if keys[sdl.SCANCODE_W] == 1 {
			forward += 1
		}
		if keys[sdl.SCANCODE_S] == 1 {
			forward -= 1
		}
		if keys[sdl.SCANCODE_D] == 1 {
			right += 1
		}
		if keys[sdl.SCANCODE_A] == 1 {
			right -= 1
		}
		if keys[sdl.SCANCODE_E] == 1 {
			up += 1
		}
		if keys[sdl.SCANCODE_C] == 1 {
			up -= 1
		}
		if forward != 0 || right != 0 || up != 0 {
			cam.HandleMovement(forward, right, up)
		}

		w, h := win.GetSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		aspect := float32(w) / float32(h)
		proj := math.Perspective(0.785398, aspect, 0.1, 20000.0) // 45 degrees FOV
		viewProj := proj.Mul(cam.ViewMatrix())

		viewer.Draw(viewProj, wireframe)

		win.SwapBuffers()
		sdl.Delay(16)
	}
}
