package prefabs

import "time"

// Poller reports prefab files whose on-disk modification time changed since
// the previous Drain. It stands in for Watcher where fsnotify is unavailable.
type Poller struct {
	names []string
	last  map[string]time.Time
	stat  func(name string) (time.Time, bool)
}

// NewPoller tracks the given names, e.g. "player.yaml" or "scripts/bell.tengo".
// The first Drain only records a baseline.
func NewPoller(names ...string) *Poller {
	return &Poller{names: names, stat: ModTime}
}

// Drain has the same contract as Watcher.Drain.
func (p *Poller) Drain() []string {
	if p == nil {
		return nil
	}
	first := p.last == nil
	if first {
		p.last = make(map[string]time.Time, len(p.names))
	}
	var out []string
	for _, name := range p.names {
		mod, ok := p.stat(name)
		if !ok {
			continue
		}
		prev, seen := p.last[name]
		p.last[name] = mod
		if !first && (!seen || !mod.Equal(prev)) {
			out = append(out, name)
		}
	}
	return out
}
