// internal/admin/command.go
package admin

import (
	"strconv"
	"strings"
)

// Command — разобранная строка консоли: имя и необязательный аргумент.
type Command struct {
	Name string
	Arg  string
	Line string
}

// Parse splits a console line into a command and its first argument.
// Extra words are ignored.
func Parse(line string) Command {
	cmd := Command{Line: strings.TrimSpace(line)}
	fields := strings.Fields(cmd.Line)
	if len(fields) == 0 {
		return cmd
	}
	cmd.Name = strings.ToLower(fields[0])
	if len(fields) > 1 {
		cmd.Arg = fields[1]
	}
	return cmd
}

// HasArg reports whether an argument was given.
func (c Command) HasArg() bool { return c.Arg != "" }

// IntArg parses the argument as an integer.
func (c Command) IntArg() (int, error) {
	return strconv.Atoi(c.Arg)
}
