package paint

import (
	"errors"
	"fmt"
	"strings"
)

// Tool decides what a drag on the canvas does.
type Tool int

const (
	ToolPath Tool = iota
	ToolRect
	ToolCircle
	ToolMove
	ToolSelect
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{ToolPath, ToolMove, ToolRect, ToolCircle, ToolSelect}

var ErrUnknownTool = errors.New("unknown tool")

func (t Tool) String() string {
	switch t {
	case ToolPath:
		return "pen"
	case ToolRect:
		return "rect"
	case ToolCircle:
		return "circle"
	case ToolMove:
		return "move"
	case ToolSelect:
		return "select"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool maps a tool name to a Tool. "path" is accepted as an alias of
// "pen".
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pen", "path":
		return ToolPath, nil
	case "rect":
		return ToolRect, nil
	case "circle":
		return ToolCircle, nil
	case "move":
		return ToolMove, nil
	case "select":
		return ToolSelect, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownTool, name)
}
