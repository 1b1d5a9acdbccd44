package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
)

type line struct {
	text string
	err  error
}

// Prompter reads answers line by line. Lines are pulled by a single reader
// goroutine so that a blocked read can still be abandoned through the context.
type Prompter struct {
	out   io.Writer
	style *Style
	lines chan line

	done      chan struct{}
	closeOnce sync.Once
}

func NewPrompter(in io.Reader, out io.Writer, style *Style) *Prompter {
	prompter := &Prompter{
		out:   out,
		style: style,
		lines: make(chan line),
		done:  make(chan struct{}),
	}

	go prompter.scan(in)

	return prompter
}

// Close - releases the reader goroutine once it has a line to hand over.
// A goroutine blocked inside the underlying Read stays until that Read returns.
func (that *Prompter) Close() {
	that.closeOnce.Do(func() { close(that.done) })
}

// scan - lines have no length limit so an over-long answer is still judged by ParseBounded.
func (that *Prompter) scan(in io.Reader) {
	defer close(that.lines)

	reader := bufio.NewReader(in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" || err == nil {
			if !that.send(line{text: strings.TrimRight(text, "\r\n")}) {
				return
			}
		}

		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			that.send(line{err: err})
			return
		}
	}
}

func (that *Prompter) send(next line) bool {
	select {
	case that.lines <- next:
		return true
	case <-that.done:
		return false
	}
}

// ReadLine - prints the prompt and waits for the next line of input.
func (that *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read aborted: %w", ctx.Err())
	case next, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		if next.err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, next.err)
		}
		return next.text, nil
	}
}

// ReadInt - keeps prompting until the answer is an integer within [minValue, maxValue].
func (that *Prompter) ReadInt(ctx context.Context, prompt string, minValue, maxValue int) (int, error) {
	for {
		input, err := that.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, err := ParseBounded(input, minValue, maxValue)
		if err == nil {
			return value, nil
		}

		fmt.Fprintln(that.out, that.style.Paint(ColorRed, "\t[!] "+Complaint(err, minValue, maxValue)))
	}
}

// ParseBounded - accepts only unsigned decimal digits whose value lies in [minValue, maxValue].
// Surrounding whitespace is ignored.
func ParseBounded(input string, minValue, maxValue int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, apperror.ErrInputRequired
	}

	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidFormat, input)
		}
	}

	// answers are 32-bit integers, anything wider is an overflow
	parsed, err := strconv.ParseInt(input, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", apperror.ErrOverflow, input)
		}
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidFormat, err)
	}

	value := int(parsed)
	if value < minValue || value > maxValue {
		return 0, fmt.Errorf("%w: %d not in %d-%d", apperror.ErrOutOfRange, value, minValue, maxValue)
	}

	return value, nil
}

// Complaint - the message shown to the player for a rejected answer.
func Complaint(err error, minValue, maxValue int) string {
	switch {
	case errors.Is(err, apperror.ErrInputRequired):
		return "Input required."
	case errors.Is(err, apperror.ErrInvalidFormat):
		return "Invalid format. Numbers only."
	case errors.Is(err, apperror.ErrOverflow):
		return "Overflow Error."
	case errors.Is(err, apperror.ErrOutOfRange):
		return fmt.Sprintf("Range Error: Enter %d-%d.", minValue, maxValue)
	default:
		return "Invalid input."
	}
}
