package prop

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tags what a prop is. Capabilities are expressed through interfaces,
// the tag only names the thing for level files and debugging.
type Kind int

const (
	KindNone Kind = iota
	KindChair
	KindDoor
	KindLocker
	KindDesk
	KindLectern
	KindChalk
	KindItem
	KindBlackboard
	KindScripted
)

var kindNames = map[Kind]string{
	KindNone:       "none",
	KindChair:      "chair",
	KindDoor:       "door",
	KindLocker:     "locker",
	KindDesk:       "desk",
	KindLectern:    "lectern",
	KindChalk:      "chalk",
	KindItem:       "item",
	KindBlackboard: "blackboard",
	KindScripted:   "scripted",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a level-file name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindNone, false
}

// Pose is a world position plus a heading in degrees.
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64
}

// Collider is the physics side of a prop, owned by the scene.
type Collider interface {
	SetSolid(solid bool)
	MoveTo(pos mgl64.Vec3)
}

type Prop interface {
	ID() string
	Kind() Kind
	Position() mgl64.Vec3
	Yaw() float64
	Active() bool
	Solid() bool
	SetSolid(solid bool)
}

// Base holds identity, pose and collision state shared by every prop.
type Base struct {
	id          string
	kind        Kind
	pos         mgl64.Vec3
	yaw         float64
	inactive    bool
	passThrough bool
	collider    Collider
}

func NewBase(id string, kind Kind, pos mgl64.Vec3, yaw float64) Base {
	return Base{id: id, kind: kind, pos: pos, yaw: yaw}
}

func (b *Base) ID() string           { return b.id }
func (b *Base) Kind() Kind           { return b.kind }
func (b *Base) Position() mgl64.Vec3 { return b.pos }
func (b *Base) Yaw() float64         { return b.yaw }
func (b *Base) Active() bool         { return !b.inactive }
func (b *Base) Solid() bool          { return !b.passThrough }

// AttachCollider binds the scene collider and pushes the current solidity to
// it.
func (b *Base) AttachCollider(c Collider) {
	b.collider = c
	if c != nil {
		c.SetSolid(!b.passThrough)
		c.MoveTo(b.pos)
	}
}

func (b *Base) SetSolid(solid bool) {
	b.passThrough = !solid
	if b.collider != nil {
		b.collider.SetSolid(solid)
	}
}

// Place moves the prop and its collider.
func (b *Base) Place(pos mgl64.Vec3, yaw float64) {
	b.pos = pos
	b.yaw = yaw
	if b.collider != nil {
		b.collider.MoveTo(pos)
	}
}

// Deactivate removes the prop from play. Inactive props are never detected.
func (b *Base) Deactivate() {
	b.inactive = true
	b.SetSolid(false)
}
