package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gallery/internal/gallery"
)

var keyCommands = map[string]gallery.Command{
	"w":     gallery.CmdPitchUp,
	"W":     gallery.CmdPitchUp,
	"s":     gallery.CmdPitchDown,
	"S":     gallery.CmdPitchDown,
	"a":     gallery.CmdYawLeft,
	"A":     gallery.CmdYawLeft,
	"d":     gallery.CmdYawRight,
	"D":     gallery.CmdYawRight,
	" ":     gallery.CmdFire,
	"space": gallery.CmdFire,
	"up":    gallery.CmdRaise,
	"down":  gallery.CmdLower,
	"r":     gallery.CmdReset,
	"R":     gallery.CmdReset,
}

// CommandFor maps a key press to a gallery command, or CmdNone.
func CommandFor(msg tea.KeyMsg) gallery.Command {
	return keyCommands[msg.String()]
}

const helpText = `space  fire
w / s  pitch up / down
a / d  yaw left / right
↑ / ↓  raise / lower the gun
r      reset the round
p      pause
t      cycle theme
?      toggle help
q      quit`
