package editor

import "image/color"

// Tool identifies the active drawing tool.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolLine
	ToolRectangle
	ToolEllipse
	ToolBucket
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "Pen"
	case ToolEraser:
		return "Eraser"
	case ToolLine:
		return "Line"
	case ToolRectangle:
		return "Rectangle"
	case ToolEllipse:
		return "Ellipse"
	case ToolBucket:
		return "Bucket"
	}
	return "Unknown"
}

// ToolState carries the tool selection for a single pointer event. The
// editor holds no tool state of its own; the UI passes the current selection
// with every call.
type ToolState struct {
	Tool  Tool
	Color color.NRGBA
	Width int
}
