// Package keyboard reads actions from ebiten keyboards and standard-layout
// gamepads.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/lootbound/config"
)

// Binding represents the keys and buttons bound to one action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DefaultBindings is the stock layout.
func DefaultBindings() map[config.ActionID]Binding {
	return map[config.ActionID]Binding{
		config.ActionMoveLeft: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			// D-pad Left (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		config.ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		config.ActionDropThrough: {
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		config.ActionJump: {
			Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeySpace},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		config.ActionAttack: {
			Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		config.ActionSprint: {
			Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
		},
		config.ActionUseItem: {
			Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyC},
			// Y / Triangle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
		},
		config.ActionCycleWeapon: {
			Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyTab},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		},
	}
}

// Device merges every keyboard key and connected gamepad into one source.
// Poll must run once per tick before Pressed is read.
type Device struct {
	Bindings map[config.ActionID]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	gamepadIDs []ebiten.GamepadID
	held       [config.ActionCount]bool
}

func New() *Device {
	return &Device{Bindings: DefaultBindings(), AnalogDeadzone: 0.25}
}

// Poll reads the hardware.
func (d *Device) Poll() {
	d.held = [config.ActionCount]bool{}
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	for actionID, binding := range d.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				d.held[actionID] = true
			}
		}
		for _, gpID := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					d.held[actionID] = true
				}
			}
		}
	}

	left, right, down := d.analogStick()
	if left {
		d.held[config.ActionMoveLeft] = true
	}
	if right {
		d.held[config.ActionMoveRight] = true
	}
	if down {
		d.held[config.ActionDropThrough] = true
	}
}

func (d *Device) Pressed(action config.ActionID) bool {
	if action < 0 || action >= config.ActionCount {
		return false
	}
	return d.held[action]
}

// analogStick reads the left stick of every gamepad against the deadzone.
func (d *Device) analogStick() (left, right, down bool) {
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -d.AnalogDeadzone {
			left = true
		}
		if horizontal > d.AnalogDeadzone {
			right = true
		}
		if vertical > d.AnalogDeadzone {
			down = true
		}
	}
	return
}
