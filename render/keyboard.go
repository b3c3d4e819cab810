// Package render draws the simulation with ebiten and feeds keyboard and
// gamepad input into it. Nothing in the simulation depends on it.
package render

import (
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps one action to physical keys and gamepad buttons.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the stick deflection ignored around center.
const AnalogDeadzone = 0.25

var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionAttack: {
		Keys:                   []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionGrab: {
		Keys:                   []ebiten.Key{ebiten.KeyK, ebiten.KeyC},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput writes the held keys and buttons into v. Must run before the
// simulation step; the player rolls v over once it has read it.
func PollInput(v *input.Virtual) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				v.Press(actionID)
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					v.Press(actionID)
				}
			}
		}
	}

	axis := 0.0
	if anyPressed(leftKeys) {
		axis--
	}
	if anyPressed(rightKeys) {
		axis++
	}
	if axis == 0 {
		axis = analogHorizontal(gamepadIDs)
	}
	v.SetAxis(axis)
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// analogHorizontal reads the left stick of the first gamepad pushed past the
// deadzone.
func analogHorizontal(gamepads []ebiten.GamepadID) float64 {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -AnalogDeadzone || h > AnalogDeadzone {
			return h
		}
	}
	return 0
}
