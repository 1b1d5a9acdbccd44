package console

// Color is an ANSI SGR sequence.
type Color string

const (
	ColorDefault Color = "\033[0m"
	ColorBlue    Color = "\033[96m"
	ColorGreen   Color = "\033[92m"
	ColorRed     Color = "\033[91m"
	ColorYellow  Color = "\033[93m"
	ColorPurple  Color = "\033[95m"
	ColorCyan    Color = "\033[36m"
)

const clearSequence = "\033[H\033[2J"

// Style switches terminal escape sequences on or off.
type Style struct {
	enabled bool
}

func NewStyle(enabled bool) *Style {
	return &Style{enabled: enabled}
}

func (that *Style) Paint(color Color, text string) string {
	if !that.enabled || color == ColorDefault {
		return text
	}

	return string(color) + text + string(ColorDefault)
}

func (that *Style) Enabled() bool {
	return that.enabled
}
