package simconfig

import "strings"

// Command is one of the fixed choices offered during Command Selection.
type Command string

const (
	CommandFight Command = "fight"
	CommandAct   Command = "act"
	CommandItem  Command = "item"
	CommandSpare Command = "spare"
)

// Commands lists the choices in menu order.
var Commands = []Command{CommandFight, CommandAct, CommandItem, CommandSpare}

// ParseCommand maps a button label to a Command. Matching ignores case and
// surrounding whitespace. The Japanese menu labels are accepted too.
func ParseCommand(label string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "fight", "たたかう":
		return CommandFight, true
	case "act", "こうどう":
		return CommandAct, true
	case "item", "アイテム":
		return CommandItem, true
	case "spare", "mercy", "let go", "みのがす":
		return CommandSpare, true
	}
	return "", false
}

// Label returns the menu text for the command.
func (c Command) Label() string {
	switch c {
	case CommandFight:
		return "FIGHT"
	case CommandAct:
		return "ACT"
	case CommandItem:
		return "ITEM"
	case CommandSpare:
		return "MERCY"
	}
	return strings.ToUpper(string(c))
}
