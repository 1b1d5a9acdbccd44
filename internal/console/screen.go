package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	brand   = "  // GAME HUB //"
	rule    = "\t========================================="
	divider = "\t-----------------------------------------"
)

// Delays are purely cosmetic pauses; zero disables them.
type Delays struct {
	Loading time.Duration
	Roll    time.Duration
	AIThink time.Duration
	Notice  time.Duration
}

type Screen struct {
	out    io.Writer
	style  *Style
	delays Delays
	sleep  func(time.Duration)
}

func NewScreen(out io.Writer, style *Style, delays Delays) *Screen {
	return &Screen{
		out:    out,
		style:  style,
		delays: delays,
		sleep:  time.Sleep,
	}
}

func (that *Screen) Delays() Delays {
	return that.delays
}

func (that *Screen) Clear() {
	if that.style.Enabled() {
		fmt.Fprint(that.out, clearSequence)
		return
	}
	fmt.Fprintln(that.out)
}

// Header - draws the branding line and a boxed title.
func (that *Screen) Header(title string) {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, that.style.Paint(ColorCyan, brand))
	fmt.Fprintln(that.out, that.style.Paint(ColorPurple, rule))
	fmt.Fprintln(that.out, that.style.Paint(ColorPurple, "\t   "+title))
	fmt.Fprintln(that.out, that.style.Paint(ColorPurple, rule))
	fmt.Fprintln(that.out)
}

// Page - clears the screen and draws a header.
func (that *Screen) Page(title string) {
	that.Clear()
	that.Header(title)
}

func (that *Screen) Divider() {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, that.style.Paint(ColorPurple, divider))
}

// Option - prints one "[key] label" menu entry.
func (that *Screen) Option(key int, label string, color Color) {
	fmt.Fprintf(that.out, "%s%s\n", that.style.Paint(color, fmt.Sprintf("\t[%d] ", key)), label)
}

func (that *Screen) Say(color Color, format string, args ...any) {
	fmt.Fprintln(that.out, that.style.Paint(color, fmt.Sprintf(format, args...)))
}

func (that *Screen) Write(text string) {
	fmt.Fprint(that.out, text)
}

func (that *Screen) Wait(d time.Duration) {
	if d > 0 {
		that.sleep(d)
	}
}

// Loading - prints the message followed by three animated dots.
func (that *Screen) Loading(message string) {
	fmt.Fprint(that.out, "\n\n\t"+message)
	for range 3 {
		fmt.Fprint(that.out, ".")
		that.Wait(that.delays.Loading / 3)
	}
	that.Clear()
}

type lineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Pause - blocks until the player presses enter.
func (that *Screen) Pause(ctx context.Context, input lineReader) error {
	if _, err := input.ReadLine(ctx, "\n\tPress [ENTER] to return..."); err != nil {
		return fmt.Errorf("pause: %w", err)
	}

	return nil
}

func indent(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "\t" + l
	}

	return strings.Join(lines, "\n") + "\n"
}
