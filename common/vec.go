package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. +Y is up, +Z is the forward direction at zero yaw.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// Flatten projects v onto the horizontal plane and normalizes it. A vertical
// vector flattens to the zero vector.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	if v.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// YawQuat is a rotation of deg degrees around the world up axis.
func YawQuat(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), Up)
}

// YawPitchQuat builds a camera rotation: yaw around world up, then pitch
// around the local right axis. Positive pitch looks down.
func YawPitchQuat(yaw, pitch float64) mgl64.Quat {
	return YawQuat(yaw).Mul(mgl64.QuatRotate(mgl64.DegToRad(pitch), Right))
}

// YawOf returns the heading in degrees of a rotation's forward vector.
func YawOf(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	return mgl64.RadToDeg(math.Atan2(f.X(), f.Z()))
}

// LookAngles returns the yaw and pitch in degrees that point the forward axis
// from eye toward target.
func LookAngles(eye, target mgl64.Vec3) (yaw, pitch float64) {
	d := target.Sub(eye)
	if d.Len() < 1e-9 {
		return 0, 0
	}
	yaw = mgl64.RadToDeg(math.Atan2(d.X(), d.Z()))
	horiz := math.Hypot(d.X(), d.Z())
	pitch = -mgl64.RadToDeg(math.Atan2(d.Y(), horiz))
	return yaw, pitch
}

// RotateAround rotates point around pivot by q.
func RotateAround(point, pivot mgl64.Vec3, q mgl64.Quat) mgl64.Vec3 {
	return pivot.Add(q.Rotate(point.Sub(pivot)))
}
