package gallery

import (
	"fmt"
	"strings"
)

// Command is one player input. Front-ends map their keys onto commands and
// the session runner reads them from scripts.
type Command int

const (
	CmdNone Command = iota
	CmdFire
	CmdPitchUp
	CmdPitchDown
	CmdYawLeft
	CmdYawRight
	CmdRaise
	CmdLower
	CmdReset
)

var commandNames = map[Command]string{
	CmdNone:      "none",
	CmdFire:      "fire",
	CmdPitchUp:   "pitch_up",
	CmdPitchDown: "pitch_down",
	CmdYawLeft:   "yaw_left",
	CmdYawRight:  "yaw_right",
	CmdRaise:     "raise",
	CmdLower:     "lower",
	CmdReset:     "reset",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range commandNames {
		if name == s && c != CmdNone {
			return c, nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command %q", s)
}

func (c Command) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Command) UnmarshalText(b []byte) error {
	parsed, err := ParseCommand(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Commands lists every command a script or key map may use.
func Commands() []Command {
	return []Command{CmdFire, CmdPitchUp, CmdPitchDown, CmdYawLeft, CmdYawRight, CmdRaise, CmdLower, CmdReset}
}
