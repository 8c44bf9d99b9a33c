package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a room layout: static walls, where the player starts, and the
// props placed in it. Distances are metres, angles degrees, +Y up.
type Level struct {
	Name       string   `json:"name"`
	Spawn      Pose     `json:"spawn"`
	StartChair string   `json:"start_chair,omitempty"`
	FallScene  string   `json:"fall_scene,omitempty"`
	Walls      []Box    `json:"walls,omitempty"`
	Entities   []Entity `json:"entities,omitempty"`
}

type Pose struct {
	Position mgl64.Vec3 `json:"position"`
	Yaw      float64    `json:"yaw"`
}

// Box is an axis-aligned block given by its min and max corners.
type Box struct {
	Min mgl64.Vec3 `json:"min"`
	Max mgl64.Vec3 `json:"max"`
}

// Entity is one placed prop. Size is the collider's full extent; Props holds
// kind-specific settings such as "seat_height", "locked" or "script".
type Entity struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Position mgl64.Vec3             `json:"position"`
	Yaw      float64                `json:"yaw"`
	Size     mgl64.Vec3             `json:"size"`
	Props    map[string]interface{} `json:"props,omitempty"`
}

// Float reads a numeric prop, falling back to def.
func (e Entity) Float(key string, def float64) float64 {
	if e.Props == nil {
		return def
	}
	switch n := e.Props[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return def
}

func (e Entity) Bool(key string) bool {
	b, _ := e.Props[key].(bool)
	return b
}

func (e Entity) String(key string) string {
	s, _ := e.Props[key].(string)
	return s
}

// Pose reads a {"position": [x,y,z], "yaw": deg} prop.
func (e Entity) Pose(key string) (Pose, bool) {
	raw, ok := e.Props[key].(map[string]interface{})
	if !ok {
		return Pose{}, false
	}
	var p Pose
	if arr, ok := raw["position"].([]interface{}); ok && len(arr) == 3 {
		for i, v := range arr {
			f, ok := v.(float64)
			if !ok {
				return Pose{}, false
			}
			p.Position[i] = f
		}
	} else {
		return Pose{}, false
	}
	if yaw, ok := raw["yaw"].(float64); ok {
		p.Yaw = yaw
	}
	return p, true
}

func LoadLevelFromFS(name string) (*Level, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	seen := make(map[string]bool, len(lvl.Entities))
	for i, ent := range lvl.Entities {
		if ent.ID == "" {
			return nil, fmt.Errorf("level %q: entity %d has no id", lvl.Name, i)
		}
		if seen[ent.ID] {
			return nil, fmt.Errorf("level %q: duplicate entity id %q", lvl.Name, ent.ID)
		}
		seen[ent.ID] = true
	}
	return &lvl, nil
}

// Names lists the embedded level files.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			out = append(out, e.Name())
		}
	}
	return out
}
