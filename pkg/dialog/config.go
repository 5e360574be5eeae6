package dialog

// TextFormat selects how the body text is rendered.
type TextFormat string

const (
	TextPlain    TextFormat = "plain"
	TextMarkdown TextFormat = "markdown"
)

// Entry describes an item row or a footer button.
type Entry struct {
	Label  string // Markup label; may carry ANSI styling
	ID     string
	Class  string
	Focus  bool // Declared focus; informational only
	Active bool // Declared active; informational only
}

// Config is the construction input of a Widget. It is never mutated.
type Config struct {
	Selector   string // Screen slot, "name" or "#name"
	Title      string
	Text       string
	TextFormat TextFormat
	Items      []Entry
	Footer     []Entry

	// OnSelect receives the current item and, in footer mode, the current
	// button. Either may be nil.
	OnSelect func(item, button *Node)
	OnClose  func()

	// Focus makes the widget the keyboard owner right after construction.
	Focus bool

	Width      int  // Box width in cells; 0 uses DefaultWidth
	MaxVisible int  // Visible item rows; 0 shows all
	TypeAhead  bool // Printable keys jump to the best matching item
	Hints      bool // Show a key hint line under the box
}

// DefaultWidth is the box width used when Config.Width is zero.
const DefaultWidth = 50

// minWidth is the narrowest box we draw.
const minWidth = 20
