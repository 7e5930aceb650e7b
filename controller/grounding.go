package controller

import "github.com/go-gl/mathgl/mgl64"

// probeOrigin is where the ground probe starts: just above the feet.
func probeOrigin(cfg Config, position mgl64.Vec3) mgl64.Vec3 {
	return position.Sub(mgl64.Vec3{0, cfg.FootOffset - cfg.ProbeLift, 0})
}

// resolveGround runs the Grounded/Airborne state machine for one frame.
//
// A hit while the controller is moving up is ignored, otherwise the frame
// after a jump would land again on the surface it just left.
func (c *Controller) resolveGround(probe GroundProbe) Events {
	var hit ProbeResult
	if probe != nil && c.state.Velocity.Y() <= 0 {
		hit = probe.ProbeGround(probeOrigin(c.cfg, c.state.Position), c.cfg.GroundProbeDistance, c.self)
	}

	if !hit.Hit {
		if c.state.Grounded {
			c.state.Grounded = false
			return LeftGround
		}
		return 0
	}

	c.state.Position[1] = hit.ContactHeight + c.cfg.GroundSnapOffset
	if c.state.Grounded {
		return 0
	}

	c.state.Grounded = true
	if c.state.Velocity.Y() < 0 {
		c.state.Velocity[1] = 0
	}
	c.state.JumpCount = 0
	return Landed
}

// arbitrateJump grants a jump while the budget allows it. The impulse replaces
// the current vertical velocity rather than adding to it.
func (c *Controller) arbitrateJump(requested bool) Events {
	if !requested {
		return 0
	}
	if c.state.JumpCount >= c.cfg.MaxJumps {
		return JumpRejected
	}
	c.state.Velocity[1] = c.cfg.JumpImpulse()
	c.state.JumpCount++
	return Jumped
}
