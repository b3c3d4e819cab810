package config

// GruntState is the discrete combat state of a grunt.
type GruntState int

const (
	GruntThinking GruntState = iota
	GruntApproach
	GruntAttack
	GruntBackAway
	GruntHit
	GruntGrabbed
	GruntReleased
	GruntRecover
)

var gruntStateNames = [...]string{
	GruntThinking: "thinking",
	GruntApproach: "approach",
	GruntAttack:   "attack",
	GruntBackAway: "backaway",
	GruntHit:      "hit",
	GruntGrabbed:  "grabbed",
	GruntReleased: "released",
	GruntRecover:  "recover",
}

func (s GruntState) String() string {
	if s < 0 || int(s) >= len(gruntStateNames) {
		return "unknown"
	}
	return gruntStateNames[s]
}

// GruntStates lists every grunt state in declaration order.
func GruntStates() []GruntState {
	out := make([]GruntState, len(gruntStateNames))
	for i := range out {
		out[i] = GruntState(i)
	}
	return out
}

// PlayerState is derived from the player's flags each tick for the
// animation layer. It never drives player logic.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerMove
	PlayerAirborne
	PlayerAttack
	PlayerHit
	PlayerGrabReach
	PlayerGrabHold
	PlayerGrabRecover
	PlayerThrow
)

var playerStateNames = [...]string{
	PlayerIdle:        "idle",
	PlayerMove:        "move",
	PlayerAirborne:    "airborne",
	PlayerAttack:      "attack",
	PlayerHit:         "hit",
	PlayerGrabReach:   "grab_reach",
	PlayerGrabHold:    "grab_hold",
	PlayerGrabRecover: "grab_recover",
	PlayerThrow:       "throw",
}

func (s PlayerState) String() string {
	if s < 0 || int(s) >= len(playerStateNames) {
		return "unknown"
	}
	return playerStateNames[s]
}
