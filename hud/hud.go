// Package hud formats the on-screen text lines.
package hud

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const Controls = "WASD: Move | Space: Double Jump | Mouse: Look Around"

// Title renders the banner for a simulation rate of tps ticks per second.
func Title(tps int) string {
	return fmt.Sprintf("B3313 TECH DEMO - %dFPS", tps)
}

// FPS converts a frame delta to an integer rate, falling back to fallback for
// a zero or invalid delta.
func FPS(dt float64, fallback int) int {
	if dt <= 0 || math.IsInf(dt, 1) {
		return fallback
	}
	return int(1 / dt)
}

// Stats renders the stats line. Coordinates are truncated toward zero.
func Stats(position mgl64.Vec3, fps int) string {
	return fmt.Sprintf("FPS: %d | POS: %d,%d", fps, truncate(position.X()), truncate(position.Z()))
}

// Debug renders the full controller readout.
func Debug(position mgl64.Vec3, yaw float64, grounded bool, jumps, maxJumps int) string {
	state := "air"
	if grounded {
		state = "ground"
	}
	return fmt.Sprintf("POS: %d,%d,%d | YAW: %d | %s | JUMPS: %d/%d",
		truncate(position.X()), truncate(position.Y()), truncate(position.Z()),
		truncate(yaw), state, jumps, maxJumps)
}

func truncate(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}
