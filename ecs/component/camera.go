package component

import "github.com/milk9111/liminal/camera"

type Camera struct {
	TargetName string
	Rig        *camera.Rig
	Pose       camera.Pose
}

var CameraComponent = NewComponent[Camera]()
