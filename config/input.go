package config

// ActionID represents a logical player button.
type ActionID int

const (
	ActionJump ActionID = iota
	ActionAttack
	ActionGrab
	ActionCount // Must be last - used for array sizing
)

// AxisHorizontal is the name of the horizontal movement axis.
const AxisHorizontal = "Horizontal"

var actionNames = [ActionCount]string{
	ActionJump:   "Jump",
	ActionAttack: "Attack",
	ActionGrab:   "Grab",
}

// Name returns the button name polled through the input source.
func (a ActionID) Name() string {
	if a < 0 || a >= ActionCount {
		return ""
	}
	return actionNames[a]
}

// ActionByName maps a button name back to its ActionID.
func ActionByName(name string) (ActionID, bool) {
	for i, n := range actionNames {
		if n == name {
			return ActionID(i), true
		}
	}
	return 0, false
}
