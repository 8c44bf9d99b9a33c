package scene

import (
	"fmt"
	"log"
)

// Loader records scene requests made during a frame and carries out the
// latest one when the game loop calls Apply. It implements
// common.SceneLoader.
type Loader struct {
	load    func(name string) error
	pending string
	queued  bool
	loaded  []string
}

func NewLoader(load func(name string) error) *Loader {
	return &Loader{load: load}
}

func (l *Loader) LoadScene(name string) {
	if l.queued && l.pending == name {
		return
	}
	l.pending = name
	l.queued = true
	log.Printf("scene: load requested %q", name)
}

func (l *Loader) Pending() (string, bool) {
	return l.pending, l.queued
}

// Apply runs the pending request, if any.
func (l *Loader) Apply() error {
	if !l.queued {
		return nil
	}
	name := l.pending
	l.pending, l.queued = "", false
	l.loaded = append(l.loaded, name)
	if l.load == nil {
		return nil
	}
	if err := l.load(name); err != nil {
		return fmt.Errorf("scene: load %q: %w", name, err)
	}
	return nil
}

// Loaded lists every scene applied so far, oldest first.
func (l *Loader) Loaded() []string {
	return append([]string(nil), l.loaded...)
}
