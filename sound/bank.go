package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ingame-C/Class-sub002/prefabs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

type clip struct {
	spec prefabs.AudioSpec
	pcm  []byte
}

// Bank plays named clips at world positions, quieter the further they are
// from the listener. It implements common.AudioTrigger.
type Bank struct {
	ctx      *audio.Context
	clips    map[string]*clip
	listener func() mgl64.Vec3
	active   []*audio.Player
	warned   map[string]bool
}

// Load decodes every clip in spec from dir. Clips whose file is missing are
// logged and left silent.
func Load(ctx *audio.Context, spec *prefabs.AudioBankSpec, dir string) (*Bank, error) {
	b := &Bank{ctx: ctx}
	if err := b.Reload(spec, dir); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload replaces every clip. On error the previous clips stay in place.
func (b *Bank) Reload(spec *prefabs.AudioBankSpec, dir string) error {
	clips := make(map[string]*clip)
	if spec != nil {
		for _, c := range spec.Clips {
			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(c.File)))
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("sound: %s: no file %s, clip is silent", c.Name, c.File)
				continue
			}
			if err != nil {
				return fmt.Errorf("sound: read %s: %w", c.File, err)
			}
			pcm, err := b.decode(c.File, data)
			if err != nil {
				return err
			}
			clips[c.Name] = &clip{spec: c, pcm: pcm}
		}
	}
	b.clips = clips
	b.warned = make(map[string]bool)
	return nil
}

func (b *Bank) decode(name string, data []byte) ([]byte, error) {
	if !strings.HasSuffix(strings.ToLower(name), ".wav") {
		// already in the context's native PCM format
		return data, nil
	}
	stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sound: decode wav %q: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("sound: decode wav %q: %w", name, err)
	}
	return pcm, nil
}

// SetListener sets where distance is measured from, usually the camera.
func (b *Bank) SetListener(fn func() mgl64.Vec3) {
	b.listener = fn
}

func (b *Bank) Has(name string) bool {
	_, ok := b.clips[name]
	return ok
}

func (b *Bank) Play(pos mgl64.Vec3, name string, volume float64) {
	c, ok := b.clips[name]
	if !ok {
		if !b.warned[name] {
			b.warned[name] = true
			log.Printf("sound: unknown clip %q", name)
		}
		return
	}
	dist := 0.0
	if b.listener != nil {
		dist = b.listener().Sub(pos).Len()
	}
	v := Attenuate(volume*c.spec.Volume, dist, c.spec.Range)
	if v <= 0 {
		return
	}
	p := b.ctx.NewPlayerFromBytes(c.pcm)
	p.SetVolume(v)
	p.Play()
	b.active = append(b.active, p)
}

// Update releases players that have finished.
func (b *Bank) Update() {
	kept := b.active[:0]
	for _, p := range b.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("sound: close player: %v", err)
		}
	}
	for i := len(kept); i < len(b.active); i++ {
		b.active[i] = nil
	}
	b.active = kept
}

// Attenuate scales volume linearly to zero at rng metres. A non-positive
// range disables falloff.
func Attenuate(volume, dist, rng float64) float64 {
	if volume <= 0 {
		return 0
	}
	if volume > 1 {
		volume = 1
	}
	if rng <= 0 {
		return volume
	}
	if dist >= rng {
		return 0
	}
	return volume * (1 - dist/rng)
}
