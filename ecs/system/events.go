package system

import (
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
)

const (
	EventLanded       = "player.landed"
	EventLeftGround   = "player.left_ground"
	EventJumped       = "player.jumped"
	EventJumpRejected = "player.jump_rejected"
)

var eventTypes = []struct {
	flag controller.Events
	name string
}{
	{controller.Landed, EventLanded},
	{controller.LeftGround, EventLeftGround},
	{controller.Jumped, EventJumped},
	{controller.JumpRejected, EventJumpRejected},
}

// pushControllerEvents queues one world event per transition flag in ev.
func pushControllerEvents(w *ecs.World, e ecs.Entity, ev controller.Events, st controller.State) {
	for _, t := range eventTypes {
		if ev.Has(t.flag) {
			w.Events().Push(ecs.Event{Type: t.name, Entity: e, Data: st})
		}
	}
}
