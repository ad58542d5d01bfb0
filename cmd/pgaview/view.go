package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ScottFielder/MathLibEx/pkg/anim"
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/models"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
	"github.com/ScottFielder/MathLibEx/pkg/render"
)

const (
	// fitSize is the largest extent of the model once fitted.
	fitSize = 2

	dollyStep   = 0.5
	spinImpulse = 0.05
)

func (a *app) viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <model.glb>",
		Short: "Animate a glTF model in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := v.BindPFlag("fps", cmd.Flags().Lookup("fps")); err != nil {
				return err
			}
			if err := v.BindPFlag("camera.fov", cmd.Flags().Lookup("fov")); err != nil {
				return err
			}
			cfg, err := a.loadConfig(v)
			if err != nil {
				return err
			}
			return a.runView(cmd.Context(), cfg, args[0])
		},
	}
	cmd.Flags().Int("fps", 60, "target FPS")
	cmd.Flags().Float32("fov", 60, "vertical field of view in degrees")
	return cmd
}

// viewer owns everything the frame loop touches. Only the loop goroutine
// may call its methods.
type viewer struct {
	cfg    *Config
	mesh   *models.Mesh
	camera *render.Camera
	fb     *render.Framebuffer
	wire   *render.Wireframe

	seq   *anim.Sequence
	tween *anim.Tween
	orbit *anim.Orbit

	bg, color render.Color
}

// newViewer fits mesh in place and sets up a framebuffer for a terminal of
// cols x rows cells.
func newViewer(cfg *Config, mesh *models.Mesh, keys []pga.Motor, cols, rows int) (*viewer, error) {
	bg, err := render.ColorFromRGB(cfg.Background)
	if err != nil {
		return nil, err
	}
	wc, err := render.ColorFromRGB(cfg.Wire.Color)
	if err != nil {
		return nil, err
	}

	center, scale := mesh.Fit(fitSize)
	mesh.Transform(center)
	mesh.ScaleUniform(scale)

	if len(keys) < 2 {
		keys = defaultKeyframes()
	} else {
		keys = relativeKeyframes(keys, scale)
	}
	seq, err := anim.NewSequence(keys...)
	if err != nil {
		return nil, fmt.Errorf("keyframes: %w", err)
	}

	camera := render.NewCamera()
	camera.SetFOV(cfg.Camera.FOV * math3d.DegreesToRadians)
	camera.SetClipPlanes(cfg.Camera.Near, cfg.Camera.Far)
	if err := camera.LookAt(cfg.Camera.EyeVec(), cfg.Camera.AtVec(), cfg.Camera.UpVec()); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	fb := render.NewFramebuffer(1, 1)
	v := &viewer{
		cfg:    cfg,
		mesh:   mesh,
		camera: camera,
		fb:     fb,
		wire:   render.NewWireframe(camera, fb),
		seq:    seq,
		tween:  anim.NewTween(cfg.FPS, cfg.Spring.Frequency, cfg.Spring.Damping, seq.Current()),
		orbit:  anim.NewOrbit(cfg.FPS, math3d.Up(), cfg.Spring.Frequency, cfg.Spring.Damping),
		bg:     bg,
		color:  wc,
	}
	v.resize(cols, rows)
	return v, nil
}

// defaultKeyframes is the tour used when a file has no node motors to
// animate between: a quarter turn, a tilt and a lift.
func defaultKeyframes() []pga.Motor {
	quarter := motion.Rotate(math3d.Pi/2, math3d.Up())
	return []pga.Motor{
		pga.Identity(),
		quarter,
		motion.Compose(motion.Rotate(math3d.Pi/6, math3d.Right()), quarter),
		motion.Translate(math3d.V3(0, 0.5, 0)),
	}
}

// relativeKeyframes expresses every key relative to the first, so the fitted
// model starts where it was loaded, and rescales the translations to the
// fitted size.
func relativeKeyframes(keys []pga.Motor, scale float32) []pga.Motor {
	first := keys[0].Inverse()
	out := make([]pga.Motor, len(keys))
	for i, k := range keys {
		rel := pga.MulMotor(k, first)
		out[i] = motion.FromRotationTranslation(motion.RotationQuat(rel), motion.Translation(rel).Scale(scale))
	}
	return out
}

// resize fits the framebuffer to a terminal of cols x rows cells. Each cell
// shows two pixels stacked vertically.
func (v *viewer) resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	v.fb.Resize(cols, rows*2)
	v.camera.SetAspectRatio(float32(cols) / float32(rows*2))
}

// pose is the model motor for this frame: the keyframe tween, then the
// free spin on top.
func (v *viewer) pose() pga.Motor {
	return pga.MulMotor(v.orbit.Motor(), v.tween.Motor())
}

// step advances the animation one frame and redraws the framebuffer.
func (v *viewer) step() {
	v.tween.Update()
	v.orbit.Update()

	v.fb.Clear(v.bg)
	v.wire.DrawGrid(4, 0.5, render.RGB(60, 60, 70))
	v.wire.DrawAxes(0.5)
	v.wire.DrawMesh(v.mesh, v.pose(), v.color)
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionNext
	actionReset
	actionZoomIn
	actionZoomOut
	actionSpinLeft
	actionSpinRight
)

func keyAction(ev uv.KeyPressEvent) action {
	switch {
	case ev.MatchString("escape", "ctrl+c", "q"):
		return actionQuit
	case ev.MatchString("space"):
		return actionNext
	case ev.MatchString("r"):
		return actionReset
	case ev.MatchString("+", "="):
		return actionZoomIn
	case ev.MatchString("-", "_"):
		return actionZoomOut
	case ev.MatchString("left", "a"):
		return actionSpinLeft
	case ev.MatchString("right", "d"):
		return actionSpinRight
	}
	return actionNone
}

// apply handles one user action and reports whether the viewer should quit.
func (v *viewer) apply(act action) (bool, error) {
	switch act {
	case actionQuit:
		return true, nil
	case actionNext:
		v.tween.Retarget(v.seq.Next())
	case actionReset:
		v.tween.Jump(v.seq.Reset())
		v.orbit.Reset()
		return false, v.camera.LookAt(v.cfg.Camera.EyeVec(), v.cfg.Camera.AtVec(), v.cfg.Camera.UpVec())
	case actionZoomIn:
		return false, v.camera.Dolly(dollyStep)
	case actionZoomOut:
		if v.camera.Eye.Distance(v.camera.Target)+dollyStep < v.cfg.Camera.Far/2 {
			return false, v.camera.Dolly(-dollyStep)
		}
	case actionSpinLeft:
		v.orbit.Impulse(-spinImpulse)
	case actionSpinRight:
		v.orbit.Impulse(spinImpulse)
	}
	return false, nil
}

func (a *app) runView(ctx context.Context, cfg *Config, modelPath string) error {
	loader := models.NewGLTFLoader()
	mesh, err := loader.Load(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	nodes, err := models.LoadNodes(modelPath)
	if err != nil {
		return fmt.Errorf("load nodes: %w", err)
	}
	keys := models.Keyframes(nodes)
	if len(keys) < 2 {
		a.log.Printf("%s has %d node motors, using the default keyframes", filepath.Base(modelPath), len(keys))
	}
	a.log.Printf("loaded %s (%d vertices, %d triangles)", filepath.Base(modelPath), mesh.VertexCount(), mesh.TriangleCount())

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	v, err := newViewer(cfg, mesh, keys, width, height)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	// Nothing may reach stderr while the alternate screen is up.
	held := newHeldLog(maxHeldLines)
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		_ = term.Shutdown(context.Background())
		held.flush(a.log)
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Events are forwarded to the frame loop, which owns the viewer.
	actions := make(chan action, 16)
	sizes := make(chan uv.WindowSizeEvent, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case <-sizes:
				default:
				}
				sizes <- ev
			case uv.KeyPressEvent:
				if act := keyAction(ev); act != actionNone {
					select {
					case actions <- act:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(cfg.FPS)
	stats := frameStats{since: time.Now()}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-sizes:
			width, height = ev.Width, ev.Height
			term.Erase()
			if err := term.Resize(width, height); err != nil {
				return fmt.Errorf("resize terminal: %w", err)
			}
			v.resize(width, height)
		default:
		}

	drain:
		for {
			select {
			case act := <-actions:
				quit, err := v.apply(act)
				if err != nil && a.verbose {
					held.Printf("%v", err)
				}
				if quit {
					return nil
				}
			default:
				break drain
			}
		}

		now := time.Now()
		v.step()
		v.fb.Draw(term, term.Bounds())
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if fps, ok := stats.tick(time.Now()); ok && a.verbose {
			held.Printf("%.0f fps, %d culled, view %v", fps, v.wire.Culled, v.camera.View())
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

const maxHeldLines = 256

// heldLog buffers the most recent formatted lines.
type heldLog struct {
	lines []string
	limit int
}

func newHeldLog(limit int) *heldLog {
	return &heldLog{limit: limit}
}

func (h *heldLog) Printf(format string, args ...any) {
	if len(h.lines) == h.limit {
		h.lines = h.lines[1:]
	}
	h.lines = append(h.lines, fmt.Sprintf(format, args...))
}

func (h *heldLog) flush(l *log.Logger) {
	for _, line := range h.lines {
		l.Print(line)
	}
	h.lines = nil
}

// frameStats counts frames over one second windows.
type frameStats struct {
	frames int
	since  time.Time
}

// tick records a frame at now and reports the rate once a window closes.
func (s *frameStats) tick(now time.Time) (float64, bool) {
	s.frames++
	elapsed := now.Sub(s.since)
	if elapsed < time.Second {
		return 0, false
	}
	fps := float64(s.frames) / elapsed.Seconds()
	s.frames, s.since = 0, now
	return fps, true
}
