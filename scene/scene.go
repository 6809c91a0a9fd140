// scene.go decodes a scene description from disk and builds a physics.World
// from it. Scene files are either JSON or YAML, selected by file extension,
// so that hand-written test fixtures and generated ones can share one
// format-agnostic loader.
package scene

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hatchetphys/rb2d/math/vec2"
	"github.com/hatchetphys/rb2d/physics"
)

// defaultGravity is used when a scene file omits the gravity field.
const defaultGravity = -25.0

// Config is the on-disk scene description. Every field carries both a json
// and a yaml tag so the same struct decodes either format.
type Config struct {
	Width       float64          `json:"width" yaml:"width"`
	Height      float64          `json:"height" yaml:"height"`
	Gravity     *float64         `json:"gravity" yaml:"gravity"`
	Objects     []ObjectConfig   `json:"objects" yaml:"objects"`
	Constraints []ConstraintSpec `json:"constraints" yaml:"constraints"`
}

// ObjectConfig describes one body. Vel, W, and Mass only apply to dynamic
// objects and are ignored for static ones.
type ObjectConfig struct {
	Name  string     `json:"name" yaml:"name"`
	Shape string     `json:"shape" yaml:"shape"`
	Pos   [2]float64 `json:"pos" yaml:"pos"`
	Scale [2]float64 `json:"scale" yaml:"scale"`
	Angle float64    `json:"angle" yaml:"angle"`
	Color [4]float64 `json:"color" yaml:"color"`
	Type  string     `json:"type" yaml:"type"`
	Vel   [2]float64 `json:"vel" yaml:"vel"`
	W     float64    `json:"w" yaml:"w"`
	Mass  float64    `json:"mass" yaml:"mass"`
}

// ConstraintSpec names the two objects a constraint binds, by name.
type ConstraintSpec struct {
	Type     string    `json:"type" yaml:"type"`
	Objects  [2]string `json:"objects" yaml:"objects"`
	Distance float64   `json:"distance" yaml:"distance"`
}

// Scene is a loaded, runnable world plus the bookkeeping needed to refer
// back to the objects it was built from.
type Scene struct {
	World *physics.World
	RunID string
	Names map[string]physics.BodyId
}

// Load reads a scene description from path, decoding it as YAML or JSON
// depending on its extension, and builds a Scene from it.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("scene: parse json %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("scene: parse yaml %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("scene: unsupported extension %q", ext)
	}

	return Build(cfg)
}

// Build constructs a Scene from an already-decoded Config. Objects and
// constraints with invalid fields are logged and skipped rather than
// aborting the whole load — a malformed entry shouldn't sink the rest of
// the scene.
func Build(cfg Config) (*Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("scene: width and height must be positive")
	}

	gravity := defaultGravity
	if cfg.Gravity != nil {
		gravity = *cfg.Gravity
	}

	s := &Scene{
		World: physics.NewWorld(cfg.Width, cfg.Height, gravity),
		RunID: uuid.NewString(),
		Names: map[string]physics.BodyId{},
	}
	log := slog.With("scene_run_id", s.RunID)

	for _, obj := range cfg.Objects {
		if obj.Name == "" {
			log.Warn("skipping object with empty name")
			continue
		}
		if _, dup := s.Names[obj.Name]; dup {
			log.Warn("skipping object with duplicate name", "name", obj.Name)
			continue
		}
		shape, err := buildShape(obj.Shape)
		if err != nil {
			log.Warn("skipping object with invalid shape", "name", obj.Name, "shape", obj.Shape, "error", err)
			continue
		}

		pos := vec2.V2{X: obj.Pos[0], Y: obj.Pos[1]}
		scale := vec2.V2{X: obj.Scale[0], Y: obj.Scale[1]}
		if scale.X == 0 && scale.Y == 0 {
			scale = vec2.V2{X: 1, Y: 1}
		}
		angle := obj.Angle * math.Pi / 180

		switch obj.Type {
		case "dynamic":
			if obj.Mass <= 0 {
				log.Warn("skipping dynamic object with non-positive mass", "name", obj.Name, "mass", obj.Mass)
				continue
			}
			vel := vec2.V2{X: obj.Vel[0], Y: obj.Vel[1]}
			s.Names[obj.Name] = s.World.AddDynamic(shape, pos, vel, angle, obj.W, obj.Mass, scale)
		case "static":
			s.Names[obj.Name] = s.World.AddStatic(shape, pos, angle, scale)
		default:
			log.Warn("skipping object with unknown type", "name", obj.Name, "type", obj.Type)
		}
	}

	for _, c := range cfg.Constraints {
		a, aok := s.Names[c.Objects[0]]
		b, bok := s.Names[c.Objects[1]]
		if !aok || !bok {
			log.Warn("skipping constraint referencing undefined object", "objects", c.Objects)
			continue
		}
		switch c.Type {
		case "position":
			s.World.AddConstraint(physics.NewDistance(a, b, c.Distance))
		case "rope":
			s.World.AddConstraint(physics.NewRope(a, b, c.Distance))
		default:
			log.Warn("skipping constraint with unknown type", "type", c.Type)
		}
	}

	return s, nil
}

// buildShape maps a scene shape name to a physics.Shape. Triangle, pentagon
// and hexagon are regular polygons on the unit circle; rectangle is a unit
// square centered on the origin. Per-object sizing comes from the object's
// scale, not the shape itself.
func buildShape(name string) (physics.Shape, error) {
	switch name {
	case "triangle":
		return physics.NewRegularPolygon(3), nil
	case "pentagon":
		return physics.NewRegularPolygon(5), nil
	case "hexagon":
		return physics.NewRegularPolygon(6), nil
	case "rectangle":
		return physics.NewPolygon([]vec2.V2{
			{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5},
		}), nil
	case "circle":
		return physics.NewCircle(), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}
