// Package moveset holds an actor's catalog of attacks: grounded moves selected
// by tier plus an air move.
package moveset

import (
	"errors"
	"fmt"

	math2 "github.com/yohamta/donburi/features/math"
)

var (
	ErrNoMoves    = errors.New("moveset: no grounded moves configured")
	ErrNoVariants = errors.New("moveset: move has no knockback variants")
	ErrAirMove    = errors.New("moveset: air move must be air-only")
	ErrNoAirMove  = errors.New("moveset: no air move configured")
)

// Vec is a knockback impulse in pixels per second, y pointing down.
type Vec = math2.Vec2

// Spec describes a move as authored in config.
type Spec struct {
	Name     string `yaml:"name"`
	Clip     string `yaml:"clip"`
	Variants []Vec  `yaml:"knockback"`
	AirOnly  bool   `yaml:"airOnly"`
}

// Move is a single attack with its knockback variants. The selected variant is
// always one of the declared ones.
type Move struct {
	name     string
	clip     string
	variants []Vec
	airOnly  bool
	current  int
}

// NewMove validates s and returns a move selecting variant 0.
func NewMove(s Spec) (*Move, error) {
	if len(s.Variants) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoVariants, s.Name)
	}
	variants := make([]Vec, len(s.Variants))
	copy(variants, s.Variants)
	return &Move{
		name:     s.Name,
		clip:     s.Clip,
		variants: variants,
		airOnly:  s.AirOnly,
	}, nil
}

func (m *Move) Name() string  { return m.name }
func (m *Move) Clip() string  { return m.clip }
func (m *Move) AirOnly() bool { return m.airOnly }

// Variants returns the number of declared knockback variants.
func (m *Move) Variants() int { return len(m.variants) }

// Variant returns the index of the selected knockback variant.
func (m *Move) Variant() int { return m.current }

// Knockback returns the selected knockback vector.
func (m *Move) Knockback() Vec {
	return m.variants[m.current]
}

// Select switches to variant i. Out of range indices are rejected and leave
// the selection untouched.
func (m *Move) Select(i int) bool {
	if i < 0 || i >= len(m.variants) {
		return false
	}
	m.current = i
	return true
}

// Reset selects the default variant.
func (m *Move) Reset() {
	m.current = 0
}

// Set is an ordered list of grounded moves indexed by tier plus an air move.
type Set struct {
	tiers []*Move
	air   *Move
}

// New builds a Set from grounded move specs and the air move spec.
func New(grounded []Spec, air *Spec) (*Set, error) {
	if len(grounded) == 0 {
		return nil, ErrNoMoves
	}
	if air == nil {
		return nil, ErrNoAirMove
	}
	if !air.AirOnly {
		return nil, fmt.Errorf("%w: %q", ErrAirMove, air.Name)
	}
	set := &Set{tiers: make([]*Move, 0, len(grounded))}
	for _, s := range grounded {
		m, err := NewMove(s)
		if err != nil {
			return nil, err
		}
		set.tiers = append(set.tiers, m)
	}
	m, err := NewMove(*air)
	if err != nil {
		return nil, err
	}
	set.air = m
	return set, nil
}

// MustNew is New for moves declared in code.
func MustNew(grounded []Spec, air *Spec) *Set {
	set, err := New(grounded, air)
	if err != nil {
		panic(err)
	}
	return set
}

// Tiers returns the number of grounded moves.
func (s *Set) Tiers() int { return len(s.tiers) }

// Tier returns the grounded move for tier i, wrapping out of range values.
func (s *Set) Tier(i int) *Move {
	n := len(s.tiers)
	return s.tiers[((i%n)+n)%n]
}

// Air returns the air move.
func (s *Set) Air() *Move { return s.air }

// Each calls fn for every move in the set, grounded tiers first.
func (s *Set) Each(fn func(*Move)) {
	for _, m := range s.tiers {
		fn(m)
	}
	fn(s.air)
}
