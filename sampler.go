package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/liminal/input"
)

const (
	stickDeadzone = 0.2

	// mouseLookScale turns cursor pixels per frame into look axis units.
	mouseLookScale = 0.2
	stickLookScale = 1.0
)

// keyboardSampler reads keyboard, mouse and the first gamepad. It owns the jump
// edge so a held key or button jumps once.
type keyboardSampler struct {
	jump input.Edge

	lastX, lastY int
	primed       bool
}

func newKeyboardSampler() *keyboardSampler {
	return &keyboardSampler{}
}

func (s *keyboardSampler) Sample() input.Frame {
	forward := input.Axis(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	)
	strafe := input.Axis(
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
	)
	jumpDown := ebiten.IsKeyPressed(ebiten.KeySpace)
	look := s.cursorDelta().Mul(mouseLookScale)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			if x := input.ClampAxis(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), stickDeadzone); x != 0 {
				strafe = x
			}
			if y := input.ClampAxis(-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical), stickDeadzone); y != 0 {
				forward = y
			}
			look = look.Add(mgl64.Vec2{
				input.ClampAxis(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal), stickDeadzone),
				input.ClampAxis(-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical), stickDeadzone),
			}.Mul(stickLookScale))
			jumpDown = jumpDown || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		}
	}

	if !ebiten.IsFocused() {
		s.jump.Reset()
		s.primed = false
		return input.Frame{}
	}

	return input.Frame{
		Forward: forward,
		Strafe:  strafe,
		Jump:    s.jump.Update(jumpDown),
		Look:    look,
	}
}

// cursorDelta is the cursor motion since the last frame with screen y flipped,
// so moving the mouse up looks up.
func (s *keyboardSampler) cursorDelta() mgl64.Vec2 {
	x, y := ebiten.CursorPosition()
	if !s.primed || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.lastX, s.lastY, s.primed = x, y, true
		return mgl64.Vec2{}
	}
	dx, dy := x-s.lastX, y-s.lastY
	s.lastX, s.lastY = x, y
	return mgl64.Vec2{float64(dx), float64(-dy)}
}
