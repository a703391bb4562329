package hid

import "strings"

// Command is the unit handed to the device transport. Exactly one of
// Action or Text is populated; the constructors below enforce that and
// callers are expected to use them.
type Command struct {
	Action Action
	Text   string
}

// ActionCommand builds a command carrying a single action token.
func ActionCommand(a Action) Command {
	return Command{Action: a}
}

// TextCommand builds a command carrying a free-form text payload.
func TextCommand(text string) Command {
	return Command{Text: text}
}

// IsZero reports whether neither payload kind is populated.
func (c Command) IsZero() bool {
	return c.Action == "" && c.Text == ""
}

// Validate checks the exactly-one-payload invariant and that an action
// payload belongs to the known token set.
func (c Command) Validate() error {
	switch {
	case c.Action == "" && c.Text == "":
		return coreError(ErrCodeBadRequest, "command has no payload")
	case c.Action != "" && c.Text != "":
		return coreError(ErrCodeBadRequest, "command has both action and text payloads")
	case c.Action != "" && !c.Action.Known():
		return coreError(ErrCodeUnknownAction, "unknown action "+string(c.Action))
	}
	return nil
}

// Encode serializes the command into the newline-framed token the device
// firmware reads off the UART: a bare token for mouse actions, CMD:<key>
// for key actions, TEXT:<payload> for text. Newlines inside a text payload
// would split the frame, so they are mapped to spaces.
func (c Command) Encode() []byte {
	var b strings.Builder
	switch {
	case c.Text != "":
		b.WriteString("TEXT:")
		b.WriteString(strings.ReplaceAll(c.Text, "\n", " "))
	case c.Action.IsKey():
		b.WriteString("CMD:")
		b.WriteString(string(c.Action))
	default:
		b.WriteString(string(c.Action))
	}
	b.WriteByte('\n')
	return []byte(b.String())
}
