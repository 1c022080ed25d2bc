package render

import (
	"github.com/lixenwraith/neuralfield/terminal"
)

// Cell is an alias to terminal.Cell to avoid copying
// Attributes are preserved directly
type Cell = terminal.Cell
type Attr = terminal.Attr
