package common

import "github.com/go-gl/mathgl/mgl64"

// ModalUI is an overlay that takes over the logic tick while it is shown.
type ModalUI interface {
	LogicUpdate()
}

// AudioTrigger is a fire-and-forget sound request.
type AudioTrigger interface {
	Play(pos mgl64.Vec3, clip string, volume float64)
}

// SceneLoader requests a scene change by name.
type SceneLoader interface {
	LoadScene(name string)
}

// Target is anything with a world position that can be looked at.
type Target interface {
	Position() mgl64.Vec3
}

// Point is a fixed Target.
type Point mgl64.Vec3

func (p Point) Position() mgl64.Vec3 { return mgl64.Vec3(p) }

// NopAudio drops every request.
type NopAudio struct{}

func (NopAudio) Play(mgl64.Vec3, string, float64) {}

// NopSceneLoader drops every request.
type NopSceneLoader struct{}

func (NopSceneLoader) LoadScene(string) {}
