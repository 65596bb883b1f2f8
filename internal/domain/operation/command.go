package operation

import (
	"errors"
	"fmt"
)

// Opcode identifies the movement a command requests
type Opcode string

const (
	OpcodeLoad   Opcode = "LOAD"
	OpcodeUnload Opcode = "UNLOAD"
)

func (o Opcode) String() string {
	return string(o)
}

// ErrUnrecognized marks a command whose opcode has no entry in the dispatch table.
// Such commands are dropped without lookup or diagnostic.
var ErrUnrecognized = errors.New("unrecognized opcode")

// Command is the typed result of parsing one operation line.
//
// LOAD fills Vessel, Source and Destination.
// UNLOAD fills Vessel and Destination; Source stays empty.
type Command struct {
	Opcode      Opcode
	Vessel      string
	Source      string
	Destination string
	Raw         string
}

// HasSource reports whether the command names a source port
func (c *Command) HasSource() bool {
	return c.Source != ""
}

func (c *Command) String() string {
	if c.HasSource() {
		return fmt.Sprintf("%s %s %s->%s", c.Opcode, c.Vessel, c.Source, c.Destination)
	}
	return fmt.Sprintf("%s %s ->%s", c.Opcode, c.Vessel, c.Destination)
}
