package player

import (
	"math"
	"testing"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/prop"
	"github.com/go-gl/mathgl/mgl64"
)

func TestDetectorUsesInteractableLayer(t *testing.T) {
	r := newRig(t, nil)
	r.ray.hit = prop.NewDesk("desk", mgl64.Vec3{0, 0, 1}, 0, 0.75)
	r.tick()
	if r.ray.mask != common.LayerInteractable {
		t.Fatalf("mask = %b", r.ray.mask)
	}
	if r.p.Detected() == nil || r.p.IsInteractable() {
		t.Fatal("desk should be detected but not interactable")
	}

	item := prop.NewItem("i", mgl64.Vec3{}, 0)
	item.Deactivate()
	r.ray.hit = item
	r.tick()
	if r.p.Detected() != nil {
		t.Fatal("inactive prop detected")
	}
}

func TestGrabFollowsCamera(t *testing.T) {
	item := prop.NewItem("pen", mgl64.Vec3{0, 0.8, 1}, 0)
	r := newRig(t, nil)
	r.ray.hit = item
	r.press(true, false)

	if r.p.Held() != item || !item.IsHeld() || item.Solid() || !r.p.IsGrabbing() {
		t.Fatal("grab did not take the item")
	}
	if r.audio.count("grab") != 1 {
		t.Fatalf("audio = %v", r.audio.clips)
	}

	r.ray.hit = nil
	r.input.in.MouseX = 45
	r.tick()
	r.input.in.MouseX = 0
	r.tick()
	if r.p.Yaw() != 90 {
		t.Fatalf("yaw = %v", r.p.Yaw())
	}
	cfg := r.p.Config()
	rot := r.p.CameraRotation()
	want := r.p.CameraPosition().
		Add(rot.Rotate(common.Forward).Mul(cfg.HoldForward)).
		Add(rot.Rotate(common.Right).Mul(cfg.HoldRight)).
		Add(rot.Rotate(common.Up).Mul(cfg.HoldUp))
	if !vecNear(item.Position(), want) {
		t.Fatalf("held at %v, want %v", item.Position(), want)
	}
	if item.Yaw() != r.p.Yaw() {
		t.Fatalf("held yaw = %v, want camera yaw %v", item.Yaw(), r.p.Yaw())
	}
}

func TestReleaseAndSettle(t *testing.T) {
	pen := prop.NewItem("pen", mgl64.Vec3{}, 0)
	cup := prop.NewItem("cup", mgl64.Vec3{}, 0)
	r := newRig(t, nil)

	r.ray.hit = pen
	r.press(true, false)
	r.ray.hit = nil
	r.press(false, true)

	if r.p.Held() != nil || pen.IsHeld() || !pen.Solid() {
		t.Fatal("release did not let go")
	}
	want := r.p.CameraPosition().Add(r.p.CameraForward().Mul(1.0)).Add(mgl64.Vec3{0, 0.1, 0})
	if !vecNear(pen.Position(), want) {
		t.Fatalf("dropped at %v, want %v", pen.Position(), want)
	}
	if !r.p.IsGrabbing() {
		t.Fatal("grabbing cleared before the settle delay")
	}

	r.ray.hit = cup
	r.press(true, false)
	if r.p.Held() != nil || cup.IsHeld() {
		t.Fatal("grabbed again while settling")
	}

	r.ray.hit = nil
	r.ticks(15)
	if r.p.IsGrabbing() {
		t.Fatal("still grabbing after the settle delay")
	}

	r.ray.hit = cup
	r.press(true, false)
	if r.p.Held() != cup {
		t.Fatal("grab after settle failed")
	}
}

func TestReleaseOntoDesk(t *testing.T) {
	desk := prop.NewDesk("desk", mgl64.Vec3{0, 0, 1.5}, 0, 0.75)
	book := prop.NewItem("book", mgl64.Vec3{}, 0)
	r := newRig(t, nil)

	r.ray.hit = book
	r.press(true, false)
	r.ray.hit = desk
	r.press(false, true)

	if !desk.Contains(book) || book.Surface() != desk {
		t.Fatal("book not registered on the desk")
	}
	want := r.p.CameraPosition().Add(r.p.CameraForward().Mul(1.5)).Add(mgl64.Vec3{0, 0.1, 0})
	if !vecNear(book.Position(), want) {
		t.Fatalf("dropped at %v, want %v", book.Position(), want)
	}

	r.ticks(20)
	r.ray.hit = book
	r.press(true, false)
	if r.p.Held() != book || desk.Contains(book) || book.Surface() != nil {
		t.Fatal("picking up did not remove the book from the desk")
	}
}

func TestHeldByOtherIsNotGrabbed(t *testing.T) {
	item := prop.NewItem("pen", mgl64.Vec3{}, 0)
	item.SetHeld(true)
	r := newRig(t, nil)
	r.ray.hit = item
	r.press(true, false)
	if r.p.Held() != nil || r.p.IsGrabbing() {
		t.Fatal("grabbed an item that is already held")
	}
}

func TestSecondGrabKeepsFirst(t *testing.T) {
	desk := prop.NewDesk("desk", mgl64.Vec3{5, 0, 5}, 0, 0.75)
	first := prop.NewItem("first", mgl64.Vec3{}, 0)
	second := prop.NewItem("second", mgl64.Vec3{5, 0.75, 5}, 0)
	desk.Add(second)
	r := newRig(t, nil)

	r.ray.hit = first
	r.press(true, false)
	r.ray.hit = second
	r.press(true, false)

	if r.p.Held() != first || !first.IsHeld() {
		t.Fatal("first item no longer held")
	}
	if second.IsHeld() || !second.Solid() {
		t.Fatal("second item was picked up")
	}
	if second.Position() != (mgl64.Vec3{5, 0.75, 5}) {
		t.Fatalf("second item moved to %v", second.Position())
	}
	if !desk.Contains(second) || second.Surface() != desk {
		t.Fatal("second item left its desk")
	}
	cfg := r.p.Config()
	rot := r.p.CameraRotation()
	want := r.p.CameraPosition().
		Add(rot.Rotate(common.Forward).Mul(cfg.HoldForward)).
		Add(rot.Rotate(common.Right).Mul(cfg.HoldRight)).
		Add(rot.Rotate(common.Up).Mul(cfg.HoldUp))
	if !vecNear(first.Position(), want) {
		t.Fatalf("first held at %v, want %v", first.Position(), want)
	}
}

func TestReleaseBlockedByModal(t *testing.T) {
	item := prop.NewItem("pen", mgl64.Vec3{}, 0)
	r := newRig(t, nil)
	r.ray.hit = item
	r.press(true, false)
	r.p.ShowModal(&fakeModal{})
	r.press(false, true)
	if r.p.Held() != item {
		t.Fatal("released while a modal was open")
	}
	if r.p.Modal() != nil {
		t.Fatal("exit press did not close the modal")
	}
}

func TestLecternOpensModalAndBlocksInteraction(t *testing.T) {
	sheet := &fakeModal{}
	lectern := prop.NewLectern("lectern", mgl64.Vec3{0, 0, 1}, 0,
		func() common.ModalUI { return sheet }, nil)
	chair := prop.NewChair("chair", mgl64.Vec3{0, 0, 1}, 0, 0.45)
	r := newRig(t, nil)

	r.ray.hit = lectern
	r.press(true, false)
	if r.p.Modal() != sheet {
		t.Fatal("lectern did not open its sheet")
	}
	if sheet.ticks != 1 {
		t.Fatalf("sheet ticks = %d, want 1", sheet.ticks)
	}

	r.ray.hit = chair
	r.press(true, false)
	if r.p.State() != r.p.States().Idle {
		t.Fatal("interaction went through a modal")
	}

	r.press(false, true)
	if r.p.Modal() != nil {
		t.Fatal("modal not dismissed")
	}
	r.press(true, false)
	if r.p.State() != r.p.States().Sit {
		t.Fatal("interaction after dismissal failed")
	}
}

func TestChalkOnBlackboard(t *testing.T) {
	chalk := prop.NewChalk("chalk", mgl64.Vec3{}, 0)
	board := prop.NewBlackboard("board", mgl64.Vec3{0, 1.5, 2}, 0, nil)
	r := newRig(t, nil)

	r.ray.hit = board
	r.press(true, false)
	if board.Writes != 0 {
		t.Fatal("board written without chalk")
	}

	r.ray.hit = chalk
	r.press(true, false)
	r.ray.hit = board
	r.press(true, false)
	if board.Writes != 1 || chalk.Active() {
		t.Fatalf("writes=%d chalk active=%v", board.Writes, chalk.Active())
	}
	if r.p.Held() != nil || r.p.IsGrabbing() {
		t.Fatal("consumed chalk still held")
	}
}

func TestDoorToggleThroughPlayer(t *testing.T) {
	audio := &fakeAudio{}
	door := prop.NewDoor("door", mgl64.Vec3{0, 0, 1}, 0, false, audio)
	r := newRig(t, nil)
	r.ray.hit = door
	r.press(true, false)
	if !door.Animating() {
		t.Fatal("door not swinging")
	}
	for door.Animating() {
		door.Update(dt)
	}
	if !door.IsOpen() || door.Solid() {
		t.Fatal("door did not open")
	}
	if math.Abs(door.SwingAngle()) < 1 {
		t.Fatalf("swing angle = %v", door.SwingAngle())
	}
}
