// Package controller implements a kinematic third-person character controller
// with camera-relative movement, gravity, a single downward ground probe and a
// bounded multi-jump.
package controller

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/liminal/input"
)

// Controller owns one State and advances it once per frame. It is not safe
// for concurrent use.
type Controller struct {
	cfg   Config
	state State
	self  EntityID
}

// New creates an airborne controller at spawn facing yaw degrees. self is the
// owner id of the controller's own collision volume, skipped by the probe.
func New(cfg Config, spawn mgl64.Vec3, yaw float64, self EntityID) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:  cfg,
		self: self,
		state: State{
			Position: spawn,
			Yaw:      wrapDegrees(yaw),
		},
	}, nil
}

// Update advances the controller by one frame.
//
// Order: look, horizontal velocity, gravity, ground probe, jump, integration.
// Jump arbitration runs after grounding so a press on the landing frame sees
// the reset budget, and integration runs last so it starts from the snapped
// height. A non-positive or non-finite dt skips every rate-dependent step.
func (c *Controller) Update(frame input.Frame, dt float64, probe GroundProbe) Events {
	rated := validDelta(dt)

	if rated {
		c.state.Yaw = wrapDegrees(c.state.Yaw + frame.Look.X()*c.cfg.LookSensitivity.X()*dt)

		flat := mgl64.Vec2{c.state.Velocity.X(), c.state.Velocity.Z()}
		flat = horizontalVelocity(c.cfg, flat, c.state.Yaw, frame.Forward, frame.Strafe, dt)
		c.state.Velocity[0] = flat.X()
		c.state.Velocity[2] = flat.Y()

		if !c.state.Grounded {
			c.state.Velocity[1] = applyGravity(c.cfg, c.state.Velocity.Y(), dt)
		}
	}

	events := c.resolveGround(probe)
	events |= c.arbitrateJump(frame.Jump)

	if rated {
		c.state.Position = c.state.Position.Add(c.state.Velocity.Mul(dt))
	}
	return events
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) Position() mgl64.Vec3 {
	return c.state.Position
}

func (c *Controller) Yaw() float64 {
	return c.state.Yaw
}

func (c *Controller) Grounded() bool {
	return c.state.Grounded
}

func (c *Controller) Self() EntityID {
	return c.self
}

// SetConfig swaps the tuning between frames. The jump count is clamped so the
// budget invariant holds under a smaller MaxJumps.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("controller: set config: %w", err)
	}
	c.cfg = cfg
	if c.state.JumpCount > cfg.MaxJumps {
		c.state.JumpCount = cfg.MaxJumps
	}
	return nil
}
