package system

import (
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/logger"
	"go.uber.org/zap"
)

// Telemetry counts controller transitions across the session.
type Telemetry struct {
	Landings      int
	Jumps         int
	RejectedJumps int
}

// TelemetrySystem drains the frame's controller events, counts them and logs
// them at debug level.
type TelemetrySystem struct {
	log   *zap.Logger
	stats Telemetry
}

func NewTelemetrySystem(log *zap.Logger) *TelemetrySystem {
	return &TelemetrySystem{log: logger.OrNop(log).Named("controller")}
}

func (s *TelemetrySystem) Stats() Telemetry {
	return s.stats
}

func (s *TelemetrySystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		st, _ := evt.Data.(controller.State)
		switch evt.Type {
		case EventLanded:
			s.stats.Landings++
		case EventJumped:
			s.stats.Jumps++
		case EventJumpRejected:
			s.stats.RejectedJumps++
		case EventLeftGround:
		default:
			continue
		}
		s.log.Debug(evt.Type,
			zap.Stringer("entity", evt.Entity),
			zap.Float64("x", st.Position.X()),
			zap.Float64("y", st.Position.Y()),
			zap.Float64("z", st.Position.Z()),
			zap.Float64("vy", st.Velocity.Y()),
			zap.Int("jumps", st.JumpCount),
		)
	}
}
