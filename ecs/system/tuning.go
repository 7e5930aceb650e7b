package system

import (
	"path/filepath"

	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
	"github.com/milk9111/liminal/logger"
	"github.com/milk9111/liminal/prefabs"
	"go.uber.org/zap"
)

// ChangeSource reports edited files without blocking. *prefabs.Watcher
// satisfies it.
type ChangeSource interface {
	Poll() []string
	PollErrors() []error
}

// TuningSystem reloads the tuning file when it changes on disk and applies it
// to every player between frames. A bad edit is logged and the previous
// tuning stays in force.
type TuningSystem struct {
	source ChangeSource
	path   string
	base   controller.Config
	log    *zap.Logger
}

func NewTuningSystem(source ChangeSource, path string, base controller.Config, log *zap.Logger) *TuningSystem {
	return &TuningSystem{
		source: source,
		path:   absPath(path),
		base:   base,
		log:    logger.OrNop(log).Named("tuning"),
	}
}

func (s *TuningSystem) Update(w *ecs.World, _ float64) {
	if w == nil || s.source == nil {
		return
	}

	for _, err := range s.source.PollErrors() {
		s.log.Warn("watcher error", zap.Error(err))
	}

	changed := false
	for _, name := range s.source.Poll() {
		if absPath(name) == s.path {
			changed = true
		}
	}
	if !changed {
		return
	}

	cfg, err := prefabs.LoadTuning(s.path, s.base)
	if err != nil {
		s.log.Warn("reload rejected", zap.String("path", s.path), zap.Error(err))
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.Controller == nil {
			return
		}
		if err := p.Controller.SetConfig(cfg); err != nil {
			s.log.Warn("apply tuning", zap.Stringer("entity", e), zap.Error(err))
			return
		}
		s.log.Info("tuning applied",
			zap.Stringer("entity", e),
			zap.Float64("speed", cfg.Speed),
			zap.Float64("gravity", cfg.Gravity),
			zap.Int("max_jumps", cfg.MaxJumps),
		)
	})
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
