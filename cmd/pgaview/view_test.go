package main

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/models"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// cubeMesh is an axis-aligned cube from (1,1,1) to (5,5,5).
func cubeMesh() *models.Mesh {
	m := models.NewMesh("cube")
	for i := range 8 {
		p := math3d.V3(1, 1, 1)
		if i&1 != 0 {
			p.X = 5
		}
		if i&2 != 0 {
			p.Y = 5
		}
		if i&4 != 0 {
			p.Z = 5
		}
		m.Vertices = append(m.Vertices, models.MeshVertex{Position: p})
	}
	for _, f := range [][3]int{
		{0, 2, 1}, {1, 2, 3}, {4, 5, 6}, {5, 7, 6},
		{0, 1, 4}, {1, 5, 4}, {2, 6, 3}, {3, 6, 7},
		{0, 4, 2}, {2, 4, 6}, {1, 3, 5}, {3, 7, 5},
	} {
		m.Faces = append(m.Faces, models.Face{V: f})
	}
	m.CalculateBounds()
	return m
}

func newTestViewer(t *testing.T, keys []pga.Motor) *viewer {
	t.Helper()
	cfg := validConfig()
	v, err := newViewer(&cfg, cubeMesh(), keys, 80, 24)
	require.NoError(t, err)
	return v
}

func litPixels(v *viewer) int {
	n := 0
	for y := range v.fb.Height {
		for x := range v.fb.Width {
			if v.fb.GetPixel(x, y) == v.color {
				n++
			}
		}
	}
	return n
}

func TestNewViewerFitsMesh(t *testing.T) {
	v := newTestViewer(t, nil)

	assert.True(t, v.mesh.Center().ApproxEqual(math3d.Zero3(), 1e-5), "center %v", v.mesh.Center())
	assert.InDelta(t, fitSize, v.mesh.Size().MaxComponent(), 1e-5)
	assert.Equal(t, 80, v.fb.Width)
	assert.Equal(t, 48, v.fb.Height)
	assert.InDelta(t, 80.0/48.0, v.camera.AspectRatio, 1e-6)
	assert.Equal(t, len(defaultKeyframes()), v.seq.Len())
}

func TestViewerStepDraws(t *testing.T) {
	v := newTestViewer(t, nil)
	v.step()
	assert.Positive(t, litPixels(v))
	assert.Zero(t, v.wire.Culled)
}

func TestViewerResize(t *testing.T) {
	v := newTestViewer(t, nil)
	v.resize(120, 40)
	assert.Equal(t, 120, v.fb.Width)
	assert.Equal(t, 80, v.fb.Height)

	v.resize(0, 0)
	assert.Equal(t, 1, v.fb.Width)
	assert.Equal(t, 2, v.fb.Height)
}

func TestViewerActions(t *testing.T) {
	v := newTestViewer(t, nil)
	eye := v.camera.Eye

	quit, err := v.apply(actionNext)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 1, v.seq.Index())
	assert.Equal(t, v.seq.Current(), v.tween.Target())

	_, err = v.apply(actionZoomIn)
	require.NoError(t, err)
	assert.InDelta(t, eye.Len()-dollyStep, v.camera.Eye.Len(), 1e-4)

	_, err = v.apply(actionSpinRight)
	require.NoError(t, err)
	assert.Equal(t, spinImpulse, v.orbit.Velocity)

	for range 10 {
		v.step()
	}
	assert.NotEqual(t, pga.Identity(), v.pose())

	_, err = v.apply(actionReset)
	require.NoError(t, err)
	assert.Equal(t, 0, v.seq.Index())
	assert.Equal(t, pga.Identity(), v.pose())
	assert.Equal(t, eye, v.camera.Eye)

	quit, err = v.apply(actionQuit)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestRelativeKeyframes(t *testing.T) {
	base := motion.Compose(motion.Translate(math3d.V3(10, 0, 0)), motion.Rotate(0.5, math3d.Up()))
	step := motion.Translate(math3d.V3(0, 4, 0))
	keys := relativeKeyframes([]pga.Motor{base, pga.MulMotor(step, base)}, 0.5)

	require.Len(t, keys, 2)
	assert.True(t, keys[0].ApproxEqual(pga.Identity(), 1e-5), "first key %v", keys[0])
	moved := motion.ApplyVec3(keys[1], math3d.Zero3())
	assert.True(t, moved.ApproxEqual(math3d.V3(0, 2, 0), 1e-4), "moved origin to %v", moved)
}

func TestNewViewerUsesNodeKeyframes(t *testing.T) {
	keys := []pga.Motor{pga.Identity(), motion.Translate(math3d.V3(0, 0, 8))}
	v := newTestViewer(t, keys)
	assert.Equal(t, 2, v.seq.Len())
}

func TestHeldLogFlushesLatest(t *testing.T) {
	held := newHeldLog(2)
	held.Printf("%d fps", 58)
	held.Printf("%d fps", 59)
	held.Printf("%d fps", 60)

	var buf bytes.Buffer
	held.flush(log.New(&buf, "pgaview: ", 0))
	assert.Equal(t, "pgaview: 59 fps\npgaview: 60 fps\n", buf.String())

	buf.Reset()
	held.flush(log.New(&buf, "", 0))
	assert.Empty(t, buf.String())
}

func TestFrameStats(t *testing.T) {
	start := time.Unix(100, 0)
	stats := frameStats{since: start}

	for i := 1; i < 30; i++ {
		_, ok := stats.tick(start.Add(time.Duration(i) * 10 * time.Millisecond))
		require.False(t, ok)
	}
	fps, ok := stats.tick(start.Add(1500 * time.Millisecond))
	require.True(t, ok)
	assert.InDelta(t, 20, fps, 1e-9)

	_, ok = stats.tick(start.Add(1600 * time.Millisecond))
	assert.False(t, ok)
}
