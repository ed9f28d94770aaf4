// Package input defines the decoded controller state the lab controller
// consumes. The core never sees raw device events; an adapter (keyboard,
// GPIO, gamepad) fills one State per frame.
package input

// State carries pressed-this-frame edges for the four directions and both
// action buttons, plus held booleans for the action buttons. The held flags
// are what the two-stage commit gesture is built from.
type State struct {
	UpPressed    bool
	DownPressed  bool
	LeftPressed  bool
	RightPressed bool

	ActionL bool
	ActionR bool

	ActionLHeld bool
	ActionRHeld bool
}
