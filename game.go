package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
	"github.com/milk9111/liminal/ecs/entity"
	"github.com/milk9111/liminal/ecs/system"
	"github.com/milk9111/liminal/hud"
	"github.com/milk9111/liminal/input"
	"github.com/milk9111/liminal/logger"
	"github.com/milk9111/liminal/minimap"
	"github.com/milk9111/liminal/prefabs"
	"github.com/milk9111/liminal/world"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type gameOptions struct {
	Level   string
	Tuning  string
	Debug   bool
	Sampler input.Sampler
}

type Game struct {
	frames int
	debug  bool
	log    *zap.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	registry  *world.Registry
	space     *world.Space
	minimap   *minimap.Map
	stats     *system.TelemetrySystem
	watcher   *prefabs.Watcher
	hud       *hudOverlay

	player ecs.Entity
	cam    ecs.Entity

	drawList []*component.LevelObject
}

func NewGame(opts gameOptions, log *zap.Logger) (*Game, error) {
	level, err := prefabs.LoadLevelSpec(opts.Level)
	if err != nil {
		return nil, err
	}

	log = logger.OrNop(log)
	g := &Game{
		debug:    opts.Debug,
		log:      log,
		world:    ecs.NewWorld(),
		registry: world.NewRegistry(),
		space:    world.NewSpace(),
	}
	if _, err := entity.BuildLevel(g.world, level, g.registry, g.space); err != nil {
		return nil, err
	}
	g.minimap = minimap.New(g.registry, minimap.DefaultProjection())

	var buildOpts []entity.BuildOption
	var tuningSystem ecs.System
	if opts.Tuning != "" {
		base, err := prefabDefaults()
		if err != nil {
			return nil, err
		}
		cfg, err := prefabs.LoadTuning(opts.Tuning, base)
		if err != nil {
			return nil, err
		}
		buildOpts = append(buildOpts, entity.WithTuning(cfg))

		if w, err := prefabs.NewWatcher(dirOf(opts.Tuning)); err != nil {
			log.Warn("tuning hot reload disabled", zap.String("path", opts.Tuning), zap.Error(err))
		} else {
			g.watcher = w
			tuningSystem = system.NewTuningSystem(w, opts.Tuning, base, log)
		}
	}

	if g.player, err = entity.NewPlayerAt(g.world, level.Spawn.Vec(), level.Yaw, buildOpts...); err != nil {
		return nil, err
	}
	if g.cam, err = entity.NewCamera(g.world); err != nil {
		return nil, err
	}

	sampler := opts.Sampler
	if sampler == nil {
		sampler = newKeyboardSampler()
	}
	if g.hud, err = newHUDOverlay(ebiten.TPS(), opts.Debug); err != nil {
		return nil, err
	}
	g.stats = system.NewTelemetrySystem(log)
	g.scheduler = ecs.NewScheduler(
		tuningSystem,
		system.NewInputSystem(sampler),
		system.NewPlayerControllerSystem(g.space),
		system.NewCameraSystem(),
		g.stats,
	)

	log.Info("level loaded",
		zap.String("level", level.Name),
		zap.Int("objects", g.registry.Len()),
		zap.Int("platforms", len(g.minimap.Markers())),
	)
	return g, nil
}

// prefabDefaults is the tuning the player prefab declares, the base that a
// tuning file is laid over.
func prefabDefaults() (controller.Config, error) {
	w := ecs.NewWorld()
	e, err := entity.NewPlayer(w)
	if err != nil {
		return controller.Config{}, err
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	return p.Controller.Config(), nil
}

func (g *Game) Update() error {
	g.frames++
	g.scheduler.Update(g.world, 1/float64(ebiten.TPS()))

	st := g.state()
	g.hud.SetStats(hud.Stats(st.Position, int(ebiten.ActualFPS())), g.debugText(st))
	g.hud.Update()
	return nil
}

func (g *Game) debugText(st controller.State) string {
	if !g.debug {
		return ""
	}
	maxJumps := 0
	if p, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind()); ok && p.Controller != nil {
		maxJumps = p.Controller.Config().MaxJumps
	}
	s := g.stats.Stats()
	return hud.Debug(st.Position, st.Yaw, st.Grounded, st.JumpCount, maxJumps) +
		fmt.Sprintf("\nLANDINGS: %d | JUMPS: %d | REJECTED: %d | FRAMES: %d", s.Landings, s.Jumps, s.RejectedJumps, g.frames)
}

func (g *Game) state() controller.State {
	p, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind())
	if !ok || p.Controller == nil {
		return controller.State{}
	}
	return p.Controller.State()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	st := g.state()

	v := view{center: st.Position, w: float64(screen.Bounds().Dx()), h: float64(screen.Bounds().Dy())}
	g.drawLevel(screen, v)
	g.drawPlayer(screen, v, st)
	g.drawMinimap(screen, st)

	g.hud.Draw(screen)
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
