package prefabs

import (
	"reflect"
	"testing"
	"time"
)

func TestPollerDrain(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mods := map[string]time.Time{"player.yaml": base}
	p := NewPoller("player.yaml", "audio.yaml")
	p.stat = func(name string) (time.Time, bool) {
		m, ok := mods[name]
		return m, ok
	}

	steps := []struct {
		name   string
		change func()
		want   []string
	}{
		{"baseline", func() {}, nil},
		{"unchanged", func() {}, nil},
		{"edited", func() { mods["player.yaml"] = base.Add(time.Second) }, []string{"player.yaml"}},
		{"created", func() { mods["audio.yaml"] = base }, []string{"audio.yaml"}},
		{"removed", func() { delete(mods, "audio.yaml") }, nil},
	}
	for _, st := range steps {
		st.change()
		if got := p.Drain(); !reflect.DeepEqual(got, st.want) {
			t.Fatalf("%s: Drain() = %v, want %v", st.name, got, st.want)
		}
	}
}

func TestModTimeMissingFile(t *testing.T) {
	if _, ok := ModTime("no_such_file.yaml"); ok {
		t.Fatal("ModTime reported a file that does not exist")
	}
}
