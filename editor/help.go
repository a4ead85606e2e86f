package editor

import (
	"fmt"
	"strings"
)

// Help categories
type HelpCategory struct {
	Name     string
	Commands []HelpCommand
}

type HelpCommand struct {
	Key         string
	Description string
}

var helpCategories = []HelpCategory{
	{
		Name: "Drawing",
		Commands: []HelpCommand{
			{"left", "Place start, then end, then barriers (hold to paint)"},
			{"right", "Erase a cell (hold to erase)"},
		},
	},
	{
		Name: "Grid",
		Commands: []HelpCommand{
			{"space", "Run A* from start to end"},
			{"c", "Clear the grid"},
			{"g", "Generate a maze"},
		},
	},
	{
		Name: "System",
		Commands: []HelpCommand{
			{"q, ESC", "Quit (also stops a running search)"},
		},
	},
}

// HelpText returns the controls as an indented list.
func HelpText() string {
	var b strings.Builder
	for i, cat := range helpCategories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cat.Name + ":\n")
		for _, cmd := range cat.Commands {
			b.WriteString(fmt.Sprintf("  %-8s %s\n", cmd.Key, cmd.Description))
		}
	}
	return b.String()
}

// CompactHelp returns a single-line help hint
func CompactHelp() string {
	return "right-click: erase  c: clear  g: maze  q: quit"
}
