package system

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
	"github.com/milk9111/liminal/ecs/entity"
	"github.com/milk9111/liminal/input"
	"github.com/milk9111/liminal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const frameDT = 1.0 / 60.0

type rig struct {
	w         *ecs.World
	player    ecs.Entity
	cam       ecs.Entity
	space     *world.Space
	next      input.Frame
	samples   int
	telemetry *TelemetrySystem
	scheduler *ecs.Scheduler
	logs      *observer.ObservedLogs
}

func newRig(t *testing.T, spawn mgl64.Vec3) *rig {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	r := &rig{w: ecs.NewWorld(), space: world.NewSpace(), logs: logs}

	floor := world.Box{Center: mgl64.Vec3{0, 0, 0}, Size: mgl64.Vec3{20, 0.5, 20}}
	r.space.Add(controller.EntityID(math.MaxUint32), floor)

	var err error
	if r.player, err = entity.NewPlayerAt(r.w, spawn, 0); err != nil {
		t.Fatalf("player: %v", err)
	}
	if r.cam, err = entity.NewCamera(r.w); err != nil {
		t.Fatalf("camera: %v", err)
	}

	sampler := input.SamplerFunc(func() input.Frame {
		r.samples++
		f := r.next
		r.next = input.Frame{}
		return f
	})
	r.telemetry = NewTelemetrySystem(zap.New(core))
	r.scheduler = ecs.NewScheduler(
		NewInputSystem(sampler),
		NewPlayerControllerSystem(r.space),
		NewCameraSystem(),
		r.telemetry,
	)
	return r
}

func (r *rig) step(n int) {
	for i := 0; i < n; i++ {
		r.scheduler.Update(r.w, frameDT)
	}
}

func (r *rig) controller(t *testing.T) *controller.Controller {
	t.Helper()
	p, ok := ecs.Get(r.w, r.player, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("player component missing")
	}
	return p.Controller
}

func TestPlayerLandsThenJumps(t *testing.T) {
	r := newRig(t, mgl64.Vec3{0, 3, 0})

	r.step(90)
	ctrl := r.controller(t)
	if !ctrl.Grounded() {
		t.Fatalf("expected player grounded after falling, state %+v", ctrl.State())
	}
	if y := ctrl.Position().Y(); math.Abs(y-1.25) > 1e-9 {
		t.Fatalf("expected snap to 1.25, got %v", y)
	}
	if r.samples != 90 {
		t.Fatalf("expected one sample per frame, got %d", r.samples)
	}

	tr, _ := ecs.Get(r.w, r.player, component.TransformComponent.Kind())
	if tr.Position != ctrl.Position() {
		t.Fatalf("transform out of sync: %v vs %v", tr.Position, ctrl.Position())
	}

	r.next = input.Frame{Jump: true}
	r.step(1)
	if got := r.controller(t).State(); got.JumpCount != 1 || got.Velocity.Y() != 9 {
		t.Fatalf("expected jump with vy 9, got %+v", got)
	}

	stats := r.telemetry.Stats()
	if stats.Landings != 1 || stats.Jumps != 1 || stats.RejectedJumps != 0 {
		t.Fatalf("unexpected telemetry %+v", stats)
	}
	if n := r.logs.FilterMessage(EventLanded).Len(); n != 1 {
		t.Fatalf("expected one landed log, got %d", n)
	}
	if n := r.logs.FilterMessage(EventJumped).Len(); n != 1 {
		t.Fatalf("expected one jumped log, got %d", n)
	}
	if r.w.Events().Len() != 0 {
		t.Fatalf("events must not outlive the frame")
	}
}

func TestBodyBoxDoesNotGroundItsOwner(t *testing.T) {
	r := newRig(t, mgl64.Vec3{100, 3, 100})
	r.step(30)

	if r.controller(t).Grounded() {
		t.Fatalf("player must not stand on its own body box")
	}
	if r.space.Len() != 2 {
		t.Fatalf("expected floor plus one body box, got %d", r.space.Len())
	}
}

func TestAirJumpsAreBudgeted(t *testing.T) {
	r := newRig(t, mgl64.Vec3{0, 1.25, 0})
	r.step(2)

	for i := 0; i < 3; i++ {
		r.next = input.Frame{Jump: true}
		r.step(3)
	}
	stats := r.telemetry.Stats()
	if stats.Jumps != 2 || stats.RejectedJumps != 1 {
		t.Fatalf("expected 2 jumps and 1 rejection, got %+v", stats)
	}
}

func TestCameraTrailsPlayer(t *testing.T) {
	r := newRig(t, mgl64.Vec3{0, 3, 0})
	r.step(1)

	cam, ok := ecs.Get(r.w, r.cam, component.CameraComponent.Kind())
	if !ok {
		t.Fatalf("camera missing")
	}
	pos := r.controller(t).Position()
	want := pos.Add(mgl64.Vec3{0, 8, -15})
	if !cam.Pose.Eye.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("expected eye %v, got %v", want, cam.Pose.Eye)
	}
	tr, _ := ecs.Get(r.w, r.cam, component.TransformComponent.Kind())
	if tr.Position != cam.Pose.Eye {
		t.Fatalf("camera transform not synced")
	}

	r.next = input.Frame{Look: mgl64.Vec2{0, 1000}}
	r.step(1)
	if cam.Rig.Pitch() != -90 {
		t.Fatalf("expected pitch clamped to -90, got %v", cam.Rig.Pitch())
	}
}

type fakeSource struct {
	paths []string
	errs  []error
}

func (f *fakeSource) Poll() []string {
	out := f.paths
	f.paths = nil
	return out
}

func (f *fakeSource) PollErrors() []error {
	out := f.errs
	f.errs = nil
	return out
}

func TestTuningSystemAppliesEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("speed: 12\nmax_jumps: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	w := ecs.NewWorld()
	e, err := entity.NewPlayer(w)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())

	src := &fakeSource{}
	sys := NewTuningSystem(src, path, controller.DefaultConfig(), zap.New(core))

	src.paths = []string{filepath.Join(dir, "other.yaml")}
	sys.Update(w, frameDT)
	if p.Controller.Config().Speed != 8 {
		t.Fatalf("unrelated file must not reload tuning")
	}

	src.paths = []string{path}
	sys.Update(w, frameDT)
	cfg := p.Controller.Config()
	if cfg.Speed != 12 || cfg.MaxJumps != 1 || cfg.Gravity != 40 {
		t.Fatalf("unexpected config after reload %+v", cfg)
	}
	if logs.FilterMessage("tuning applied").Len() != 1 {
		t.Fatalf("expected an info log for the reload")
	}

	if err := os.WriteFile(path, []byte("gravity: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	src.paths = []string{path}
	src.errs = []error{errors.New("overflow")}
	sys.Update(w, frameDT)
	if p.Controller.Config() != cfg {
		t.Fatalf("invalid edit must keep the previous tuning")
	}
	if logs.FilterMessage("reload rejected").Len() != 1 || logs.FilterMessage("watcher error").Len() != 1 {
		t.Fatalf("expected warnings, got %v", logs.All())
	}
}
