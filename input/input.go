// Package input defines the polling surface the player reads once per tick.
package input

import "github.com/automoto/robofighter/config"

// Source is polled by the player each tick. IsButtonDown reports a press that
// began this tick.
type Source interface {
	IsButtonDown(name string) bool
	GetAxis(name string) float64
}

// Framer is implemented by sources that need to roll their state over once the
// tick's input has been consumed.
type Framer interface {
	EndFrame()
}

// Virtual is a Source driven by code: bots, scripted tests and the keyboard
// adapter all write into one.
type Virtual struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
	Axis     float64
}

// Press holds the button down for the current tick.
func (v *Virtual) Press(action config.ActionID) {
	v.Current[action] = true
}

// Set records the pressed state of a button for the current tick.
func (v *Virtual) Set(action config.ActionID, pressed bool) {
	v.Current[action] = pressed
}

// SetAxis sets the horizontal axis, clamped to [-1, 1].
func (v *Virtual) SetAxis(value float64) {
	switch {
	case value > 1:
		value = 1
	case value < -1:
		value = -1
	}
	v.Axis = value
}

func (v *Virtual) IsButtonDown(name string) bool {
	action, ok := config.ActionByName(name)
	if !ok {
		return false
	}
	return v.Current[action] && !v.Previous[action]
}

func (v *Virtual) GetAxis(name string) float64 {
	if name != config.AxisHorizontal {
		return 0
	}
	return v.Axis
}

// EndFrame moves this tick's buttons into history and releases them. Buttons
// that stay held must be set again every tick.
func (v *Virtual) EndFrame() {
	v.Previous = v.Current
	v.Current = [config.ActionCount]bool{}
}
