package hid

// Action identifies one logical input command. It is an opaque token from
// the point of view of the dispatcher; the closed set below mirrors what
// the downstream HID emulator understands.
type Action string

// Mouse actions. Sent to the device as bare tokens.
const (
	ActionUp         Action = "up"
	ActionDown       Action = "down"
	ActionLeft       Action = "left"
	ActionRight      Action = "right"
	ActionLeftClick  Action = "left_click"
	ActionRightClick Action = "right_click"
)

// Key actions. Sent to the device with the CMD: prefix.
const (
	ActionShift      Action = "SHIFT"
	ActionBackspace  Action = "BACKSPACE"
	ActionEnter      Action = "ENTER"
	ActionCtrlAltDel Action = "CTRL_ALT_DEL"
	ActionWin3       Action = "WIN_3"
)

var mouseActions = map[Action]struct{}{
	ActionUp:         {},
	ActionDown:       {},
	ActionLeft:       {},
	ActionRight:      {},
	ActionLeftClick:  {},
	ActionRightClick: {},
}

var keyActions = map[Action]struct{}{
	ActionShift:      {},
	ActionBackspace:  {},
	ActionEnter:      {},
	ActionCtrlAltDel: {},
	ActionWin3:       {},
}

// IsMouse reports whether the action belongs to the mouse token set.
func (a Action) IsMouse() bool {
	_, ok := mouseActions[a]
	return ok
}

// IsKey reports whether the action belongs to the key token set.
func (a Action) IsKey() bool {
	_, ok := keyActions[a]
	return ok
}

// Known reports whether the action belongs to either closed set.
func (a Action) Known() bool {
	return a.IsMouse() || a.IsKey()
}

// Actions returns every known action token. The order is stable so callers
// can build deterministic registries from it.
func Actions() []Action {
	return []Action{
		ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionLeftClick, ActionRightClick,
		ActionShift, ActionBackspace, ActionEnter,
		ActionCtrlAltDel, ActionWin3,
	}
}
