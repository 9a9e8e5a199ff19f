package umlparser

import "strings"

// memberIndent prefixes every member line of a declaration.
const memberIndent = "  "

// Line is one source line with its 1-based line number.
type Line struct {
	Text   string
	Number int
}

// Group is a header line plus the indented member lines that follow it.
type Group struct {
	Kind    Kind
	Header  Line // Number is 0 when the group had no header line
	Members []Line
}

// groupState is the single open-group slot of the grouper.
type groupState int

const (
	stateIdle groupState = iota
	stateBuildingClass
	stateBuildingInterface
)

// GroupLines splits diagram text into header/member groups in source order.
//
// Lines end at \n, \r\n or a bare \r. Only exactly empty lines are skipped.
// An unindented line opens a new group (an interface if it starts with <<);
// a line starting with two spaces joins the open group whatever its kind.
// Members that appear before any header open a class group with an empty
// header, so they are never dropped.
func GroupLines(text string) []Group {
	var (
		groups []Group
		open   Group
		state  = stateIdle
	)

	flush := func() {
		if state != stateIdle {
			groups = append(groups, open)
		}
	}

	for _, line := range splitLines(text) {
		if line.Text == "" {
			continue
		}

		if !strings.HasPrefix(line.Text, memberIndent) {
			flush()
			if strings.HasPrefix(line.Text, "<<") {
				open = Group{Kind: KindInterface, Header: line}
				state = stateBuildingInterface
			} else {
				open = Group{Kind: KindClass, Header: line}
				state = stateBuildingClass
			}
			continue
		}

		if state == stateIdle {
			open = Group{Kind: KindClass}
			state = stateBuildingClass
		}
		open.Members = append(open.Members, line)
	}
	flush()

	return groups
}

// splitLines breaks text on \n, \r\n and bare \r, numbering lines from 1.
func splitLines(text string) []Line {
	var lines []Line
	start, number := 0, 1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, Line{Text: text[start:i], Number: number})
			start = i + 1
			number++
		case '\r':
			lines = append(lines, Line{Text: text[start:i], Number: number})
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
			number++
		}
	}
	if start < len(text) {
		lines = append(lines, Line{Text: text[start:], Number: number})
	}
	return lines
}
