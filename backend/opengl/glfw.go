package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/padgui"
)

// triggerThreshold is the analog trigger travel that counts as a press.
const triggerThreshold = 0.5

// GLFWInputAdapter implements padgui.InputSource with a GLFW gamepad and
// the keyboard of a window as fallback.
type GLFWInputAdapter struct {
	window   *glfw.Window
	joystick glfw.Joystick

	prevHold padgui.Buttons
	keys     padgui.Buttons // pressed since the last Poll
	keysHeld padgui.Buttons
}

// NewGLFWInputAdapter creates a new GLFW input adapter reading the given
// joystick slot.
func NewGLFWInputAdapter(window *glfw.Window, joystick glfw.Joystick) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:   window,
		joystick: joystick,
	}

	window.SetKeyCallback(adapter.keyCallback)

	return adapter
}

// Poll implements padgui.InputSource. Call it once per frame after
// glfw.PollEvents.
func (a *GLFWInputAdapter) Poll() (padgui.InputState, error) {
	var hold padgui.Buttons
	if a.joystick.IsGamepad() {
		if state := a.joystick.GetGamepadState(); state != nil {
			hold = gamepadButtons(state)
		}
	}

	trigger := hold &^ a.prevHold
	a.prevHold = hold

	trigger |= a.keys
	a.keys = 0

	return padgui.InputState{Trigger: trigger, Hold: hold | a.keysHeld}, nil
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwKeyToButton(key)
	if b == 0 {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.keys |= b
		a.keysHeld |= b
	case glfw.Release:
		a.keysHeld &^= b
	}
}

var gamepadMap = []struct {
	button glfw.GamepadButton
	pad    padgui.Buttons
}{
	{glfw.ButtonA, padgui.ButtonA},
	{glfw.ButtonB, padgui.ButtonB},
	{glfw.ButtonX, padgui.ButtonX},
	{glfw.ButtonY, padgui.ButtonY},
	{glfw.ButtonLeftBumper, padgui.ButtonL},
	{glfw.ButtonRightBumper, padgui.ButtonR},
	{glfw.ButtonBack, padgui.ButtonMinus},
	{glfw.ButtonStart, padgui.ButtonPlus},
	{glfw.ButtonGuide, padgui.ButtonHome},
	{glfw.ButtonLeftThumb, padgui.ButtonStickL},
	{glfw.ButtonRightThumb, padgui.ButtonStickR},
	{glfw.ButtonDpadUp, padgui.ButtonUp},
	{glfw.ButtonDpadDown, padgui.ButtonDown},
	{glfw.ButtonDpadLeft, padgui.ButtonLeft},
	{glfw.ButtonDpadRight, padgui.ButtonRight},
}

func gamepadButtons(state *glfw.GamepadState) padgui.Buttons {
	var out padgui.Buttons
	for _, m := range gamepadMap {
		if state.Buttons[m.button] == glfw.Press {
			out |= m.pad
		}
	}
	// Triggers rest at -1.
	if state.Axes[glfw.AxisLeftTrigger] > triggerThreshold {
		out |= padgui.ButtonZL
	}
	if state.Axes[glfw.AxisRightTrigger] > triggerThreshold {
		out |= padgui.ButtonZR
	}
	return out
}

// glfwKeyToButton maps GLFW keys to controller buttons.
func glfwKeyToButton(key glfw.Key) padgui.Buttons {
	switch key {
	case glfw.KeyUp, glfw.KeyW:
		return padgui.ButtonUp
	case glfw.KeyDown, glfw.KeyS:
		return padgui.ButtonDown
	case glfw.KeyLeft, glfw.KeyA:
		return padgui.ButtonLeft
	case glfw.KeyRight, glfw.KeyD:
		return padgui.ButtonRight
	case glfw.KeyEnter, glfw.KeySpace:
		return padgui.ButtonA
	case glfw.KeyEscape, glfw.KeyBackspace:
		return padgui.ButtonB
	case glfw.KeyQ:
		return padgui.ButtonL
	case glfw.KeyE:
		return padgui.ButtonR
	case glfw.KeyTab:
		return padgui.ButtonPlus
	default:
		return 0
	}
}
