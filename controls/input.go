package controls

import (
	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/automoto/flagrun/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// Poller reads keyboards and standard-layout gamepads into simulation input.
type Poller struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll merges every bound key, button and the left analog stick into one Input.
func (p *Poller) Poll() sim.Input {
	var current [ActionCount]bool

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}

		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	left, right := analogStickState(p.gamepadIDs)
	if left {
		current[ActionMoveLeft] = true
	}
	if right {
		current[ActionMoveRight] = true
	}

	return sim.Input{
		Controls: gamemath.Controls{
			Left:  current[ActionMoveLeft],
			Right: current[ActionMoveRight],
			Jump:  current[ActionJump],
		},
		Quit: current[ActionQuit],
	}
}

// analogStickState reads the left stick's horizontal axis from all gamepads
func analogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}

	return
}
