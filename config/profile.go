package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/robofighter/shared/moveset"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile wraps every profile validation failure.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Profile is a complete set of tunables. YAML documents only need to name the
// fields they override; everything else keeps its current value.
type Profile struct {
	Sim     SimConfig     `yaml:"sim"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Grunt   GruntConfig   `yaml:"grunt"`
	Clips   ClipConfig    `yaml:"clips"`
}

// CurrentProfile snapshots the package-level config.
func CurrentProfile() Profile {
	p := Profile{
		Sim:     Sim,
		Physics: Physics,
		Player:  Player,
		Grunt:   Grunt,
	}
	p.Player.Moves = cloneSpecs(Player.Moves)
	if Player.AirMove != nil {
		air := cloneSpec(*Player.AirMove)
		p.Player.AirMove = &air
	}
	p.Grunt.Attack = cloneSpec(Grunt.Attack)
	p.Clips = ClipConfig{
		Lengths: make(map[string]float64, len(Clips.Lengths)),
		Cues:    make(map[string][]ClipCue, len(Clips.Cues)),
	}
	for k, v := range Clips.Lengths {
		p.Clips.Lengths[k] = v
	}
	for k, v := range Clips.Cues {
		p.Clips.Cues[k] = append([]ClipCue(nil), v...)
	}
	return p
}

// ParseProfile overlays a YAML document on the current config and validates
// the result.
func ParseProfile(data []byte) (Profile, error) {
	p := CurrentProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("config: unmarshal profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// LoadProfile reads and parses a profile from fsys.
func LoadProfile(fsys fs.FS, path string) (Profile, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Profile{}, fmt.Errorf("config: load profile %s: %w", path, err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate rejects profiles that would leave an actor without moves or with
// non-positive sizes and timers.
func (p Profile) Validate() error {
	if _, err := moveset.New(p.Player.Moves, p.Player.AirMove); err != nil {
		return fmt.Errorf("%w: player moves: %v", ErrInvalidProfile, err)
	}
	if _, err := moveset.NewMove(p.Grunt.Attack); err != nil {
		return fmt.Errorf("%w: grunt attack: %v", ErrInvalidProfile, err)
	}
	if p.Grunt.Attack.AirOnly {
		return fmt.Errorf("%w: grunt attack cannot be air-only", ErrInvalidProfile)
	}

	positive := map[string]float64{
		"sim.tps":                     float64(p.Sim.TPS),
		"player.width":                p.Player.Width,
		"player.height":               p.Player.Height,
		"player.hitDuration":          p.Player.HitDuration,
		"grunt.width":                 p.Grunt.Width,
		"grunt.height":                p.Grunt.Height,
		"grunt.health":                float64(p.Grunt.Health),
		"grunt.maxAttackCount":        float64(p.Grunt.MaxAttackCount),
		"grunt.jabDuration":           p.Grunt.JabDuration,
		"grunt.uppercutDuration":      p.Grunt.UppercutDuration,
		"grunt.invincibilityDuration": p.Grunt.InvincibilityDuration,
		"grunt.minDistanceFromPlayer": p.Grunt.MinDistanceFromPlayer,
		"grunt.snapEpsilon":           p.Grunt.SnapEpsilon,
		"physics.groundProbeDepth":    p.Physics.GroundProbeDepth,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidProfile, name)
		}
	}

	nonNegative := map[string]float64{
		"player.punchBuffer":      p.Player.PunchBuffer,
		"player.grabHoldDuration": p.Player.GrabHoldDuration,
		"grunt.thinkDuration":     p.Grunt.ThinkDuration,
		"grunt.approachDuration":  p.Grunt.ApproachDuration,
		"grunt.recoverDuration":   p.Grunt.RecoverDuration,
		"grunt.releaseGrace":      p.Grunt.ReleaseGrace,
	}
	for name, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidProfile, name)
		}
	}
	return nil
}

// Apply replaces the package-level config with p. Actors already spawned keep
// the tuning they copied at spawn.
func (p Profile) Apply() {
	Sim = p.Sim
	Physics = p.Physics
	Player = p.Player
	Grunt = p.Grunt
	Clips = p.Clips
}

func cloneSpecs(specs []moveset.Spec) []moveset.Spec {
	out := make([]moveset.Spec, len(specs))
	for i, s := range specs {
		out[i] = cloneSpec(s)
	}
	return out
}

func cloneSpec(s moveset.Spec) moveset.Spec {
	s.Variants = append([]moveset.Vec(nil), s.Variants...)
	return s
}
