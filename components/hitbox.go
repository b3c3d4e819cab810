package components

import (
	"github.com/yohamta/donburi"
)

// StrikeData tracks one attacker's active swing. A defender is struck at most
// once per swing.
type StrikeData struct {
	Active      bool
	Swing       int                    // bumped whenever a new swing opens
	HitEntities map[donburi.Entity]int // defender -> swing it was struck on
}

// Open starts a new swing.
func (s *StrikeData) Open() {
	s.Active = true
	s.Swing++
}

// Close ends the current swing.
func (s *StrikeData) Close() {
	s.Active = false
}

// Struck reports whether target was already hit during the current swing.
func (s *StrikeData) Struck(target donburi.Entity) bool {
	swing, ok := s.HitEntities[target]
	return ok && swing == s.Swing
}

// Mark records target as hit during the current swing.
func (s *StrikeData) Mark(target donburi.Entity) {
	if s.HitEntities == nil {
		s.HitEntities = make(map[donburi.Entity]int)
	}
	s.HitEntities[target] = s.Swing
}

var Strike = donburi.NewComponentType[StrikeData]()
