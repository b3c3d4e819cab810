package config

import (
	"github.com/automoto/robofighter/shared/moveset"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// Default is the only ECS layer the simulation uses.
const Default ecs.LayerID = 0

// SimConfig holds loop and world settings.
type SimConfig struct {
	TPS      int   `yaml:"tps"`
	Seed     int64 `yaml:"seed"`
	Debug    bool  `yaml:"debug"`
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	CellSize int   `yaml:"cellSize"`
}

// DeltaTime is the fixed step in seconds.
func (s SimConfig) DeltaTime() float64 {
	if s.TPS <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(s.TPS)
}

// PhysicsConfig contains world physics. Units are pixels and seconds, y down.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"maxFallSpeed"`
	GroundProbeDepth float64 `yaml:"groundProbeDepth"`
	GroundProbeInset float64 `yaml:"groundProbeInset"`
}

// PlayerConfig contains all player tuning.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	RunSpeed            float64 `yaml:"runSpeed"`
	JumpSpeed           float64 `yaml:"jumpSpeed"`
	MinJumpHeightOffset float64 `yaml:"minJumpHeightOffset"`

	// Combat
	HitDuration float64        `yaml:"hitDuration"`
	PunchBuffer float64        `yaml:"punchBuffer"`
	AttackReach float64        `yaml:"attackReach"`
	Moves       []moveset.Spec `yaml:"moves"`
	AirMove     *moveset.Spec  `yaml:"airMove"`

	// Grab and throw
	GrabReach        float64      `yaml:"grabReach"`
	GrabHoldDuration float64      `yaml:"grabHoldDuration"`
	HoldOffset       math2.Vec2 `yaml:"holdOffset"`
	ThrowSpeed       math2.Vec2 `yaml:"throwSpeed"`
	ReleaseSpeed     math2.Vec2 `yaml:"releaseSpeed"`
}

// GruntConfig contains all grunt tuning.
type GruntConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Health int     `yaml:"health"`

	// Movement
	RunSpeed              float64 `yaml:"runSpeed"`
	BackAwaySpeed         float64 `yaml:"backAwaySpeed"`
	MinDistanceFromPlayer float64 `yaml:"minDistanceFromPlayer"`
	SnapEpsilon           float64 `yaml:"snapEpsilon"`
	FacingDeadzone        float64 `yaml:"facingDeadzone"`
	FrontReach            float64 `yaml:"frontReach"`

	// Timers (seconds)
	ThinkDuration         float64 `yaml:"thinkDuration"`
	ApproachDuration      float64 `yaml:"approachDuration"`
	RecoverDuration       float64 `yaml:"recoverDuration"`
	InvincibilityDuration float64 `yaml:"invincibilityDuration"`
	JabDuration           float64 `yaml:"jabDuration"`
	UppercutDuration      float64 `yaml:"uppercutDuration"`
	ReleaseGrace          float64 `yaml:"releaseGrace"`

	// Attack
	MaxAttackCount int          `yaml:"maxAttackCount"`
	AttackReach    float64      `yaml:"attackReach"`
	Attack         moveset.Spec `yaml:"attack"`
}

// ClipCue switches the running move's knockback variant partway through a clip.
type ClipCue struct {
	At      float64 `yaml:"at"`
	Variant int     `yaml:"variant"`
}

// ClipConfig holds animation clip lengths used by the headless clip clock.
type ClipConfig struct {
	Lengths map[string]float64   `yaml:"lengths"`
	Cues    map[string][]ClipCue `yaml:"cues"`
}

// Clip names shared by moves and the clip clock.
const (
	ClipReach       = "reach"
	ClipGrabRecover = "grab_recover"
	ClipThrow       = "throw"
)

// Length returns the clip length, or fallback when the clip is unknown.
func (c ClipConfig) Length(clip string, fallback float64) float64 {
	if l, ok := c.Lengths[clip]; ok && l > 0 {
		return l
	}
	return fallback
}

var (
	Sim     SimConfig
	Physics PhysicsConfig
	Player  PlayerConfig
	Grunt   GruntConfig
	Clips   ClipConfig
)

func init() {
	Sim = SimConfig{
		TPS:      60,
		Seed:     1,
		Width:    640,
		Height:   240,
		CellSize: 16,
	}

	Physics = PhysicsConfig{
		Gravity:          900,
		MaxFallSpeed:     480,
		GroundProbeDepth: 2,
		GroundProbeInset: 2,
	}

	Player = PlayerConfig{
		Width:  16,
		Height: 32,

		RunSpeed:            140,
		JumpSpeed:           330,
		MinJumpHeightOffset: 160,

		HitDuration: 0.4,
		PunchBuffer: 0.3,
		AttackReach: 18,
		Moves: []moveset.Spec{
			{Name: "light1", Clip: "light1", Variants: []math2.Vec2{{X: 80, Y: -40}}},
			{Name: "light2", Clip: "light2", Variants: []math2.Vec2{{X: 100, Y: -60}}},
			{Name: "med", Clip: "med", Variants: []math2.Vec2{{X: 140, Y: -90}}},
			{Name: "heavy", Clip: "heavy", Variants: []math2.Vec2{{X: 200, Y: -160}, {X: 260, Y: -220}}},
		},
		AirMove: &moveset.Spec{
			Name: "air", Clip: "air", AirOnly: true,
			Variants: []math2.Vec2{{X: 120, Y: 60}},
		},

		GrabReach:        14,
		GrabHoldDuration: 0.5,
		HoldOffset:       math2.Vec2{X: 14, Y: -10},
		ThrowSpeed:       math2.Vec2{X: 260, Y: -200},
		ReleaseSpeed:     math2.Vec2{X: 90, Y: -90},
	}

	Grunt = GruntConfig{
		Width:  16,
		Height: 32,
		Health: 3,

		RunSpeed:              90,
		BackAwaySpeed:         55,
		MinDistanceFromPlayer: 48,
		SnapEpsilon:           0.02,
		FacingDeadzone:        8,
		FrontReach:            6,

		ThinkDuration:         0.8,
		ApproachDuration:      1.5,
		RecoverDuration:       0.5,
		InvincibilityDuration: 0.3,
		JabDuration:           0.3,
		UppercutDuration:      0.45,
		ReleaseGrace:          0.2,

		MaxAttackCount: 3,
		AttackReach:    12,
		Attack: moveset.Spec{
			Name: "grunt_punch", Clip: "grunt_punch",
			Variants: []math2.Vec2{{X: 150, Y: -120}, {X: 260, Y: -220}},
		},
	}

	Clips = ClipConfig{
		Lengths: map[string]float64{
			"light1":        0.2,
			"light2":        0.2,
			"med":           0.3,
			"heavy":         0.4,
			"air":           0.35,
			ClipReach:       0.2,
			ClipGrabRecover: 0.3,
			ClipThrow:       0.3,
		},
		Cues: map[string][]ClipCue{
			"heavy": {{At: 0.2, Variant: 1}},
		},
	}
}
