package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
)

func TestParseBounded(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "lower bound", input: "1", want: 1},
		{name: "upper bound", input: "9", want: 9},
		{name: "leading zeros", input: "007", want: 7},
		{name: "surrounding spaces", input: "  4 ", want: 4},
		{name: "empty", input: "", wantErr: apperror.ErrInputRequired},
		{name: "only spaces", input: "   ", wantErr: apperror.ErrInputRequired},
		{name: "negative", input: "-3", wantErr: apperror.ErrInvalidFormat},
		{name: "letters", input: "abc", wantErr: apperror.ErrInvalidFormat},
		{name: "mixed", input: "4a", wantErr: apperror.ErrInvalidFormat},
		{name: "plus sign", input: "+4", wantErr: apperror.ErrInvalidFormat},
		{name: "decimal", input: "4.0", wantErr: apperror.ErrInvalidFormat},
		{name: "below range", input: "0", wantErr: apperror.ErrOutOfRange},
		{name: "above range", input: "10", wantErr: apperror.ErrOutOfRange},
		{name: "overflow", input: "99999999999999999999999", wantErr: apperror.ErrOverflow},
		{name: "largest 32-bit value", input: "2147483647", wantErr: apperror.ErrOutOfRange},
		{name: "just past 32 bits", input: "2147483648", wantErr: apperror.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBounded(tt.input, 1, 9)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplaint(t *testing.T) {
	_, err := ParseBounded("12", 1, 9)
	assert.Equal(t, "Range Error: Enter 1-9.", Complaint(err, 1, 9))

	_, err = ParseBounded("", 1, 9)
	assert.Equal(t, "Input required.", Complaint(err, 1, 9))

	_, err = ParseBounded("x", 1, 9)
	assert.Equal(t, "Invalid format. Numbers only.", Complaint(err, 1, 9))

	_, err = ParseBounded("99999999999999999999999", 1, 9)
	assert.Equal(t, "Overflow Error.", Complaint(err, 1, 9))

	_, err = ParseBounded("2147483648", 1, 9)
	assert.Equal(t, "Overflow Error.", Complaint(err, 1, 9))
}

func TestPrompter_ReadInt(t *testing.T) {
	ctx := context.Background()

	t.Run("Re-prompts until a valid answer arrives", func(t *testing.T) {
		// Given: three bad answers followed by a good one
		out := &bytes.Buffer{}
		prompter := NewPrompter(strings.NewReader("\nfoo\n42\n3\n"), out, NewStyle(false))

		// When: reading a value in 1..5
		value, err := prompter.ReadInt(ctx, "> ", 1, 5)

		// Then: the valid value is returned and every rejection was explained
		require.NoError(t, err)
		assert.Equal(t, 3, value)
		assert.Equal(t, 4, strings.Count(out.String(), "> "))
		assert.Contains(t, out.String(), "[!] Input required.")
		assert.Contains(t, out.String(), "[!] Invalid format. Numbers only.")
		assert.Contains(t, out.String(), "[!] Range Error: Enter 1-5.")
	})

	t.Run("Over-long answers are rejected and re-prompted", func(t *testing.T) {
		// Given: a 70 000 digit line, a 70 000 letter line and then a valid answer
		out := &bytes.Buffer{}
		script := strings.Repeat("9", 70000) + "\n" + strings.Repeat("x", 70000) + "\n5\n"
		prompter := NewPrompter(strings.NewReader(script), out, NewStyle(false))
		t.Cleanup(prompter.Close)

		// When: reading a value in 1..9
		value, err := prompter.ReadInt(ctx, "> ", 1, 9)

		// Then: both long lines were judged and the valid value is returned
		require.NoError(t, err)
		assert.Equal(t, 5, value)
		assert.Contains(t, out.String(), "[!] Overflow Error.")
		assert.Contains(t, out.String(), "[!] Invalid format. Numbers only.")
		assert.Equal(t, 3, strings.Count(out.String(), "> "))
	})

	t.Run("Accepts windows line endings", func(t *testing.T) {
		prompter := NewPrompter(strings.NewReader("2\r\n"), io.Discard, NewStyle(false))

		value, err := prompter.ReadInt(ctx, "> ", 1, 5)

		require.NoError(t, err)
		assert.Equal(t, 2, value)
	})

	t.Run("Returns ErrInputClosed at end of input", func(t *testing.T) {
		// Given: input with only invalid answers
		prompter := NewPrompter(strings.NewReader("x\n"), io.Discard, NewStyle(false))

		// When: reading a value
		_, err := prompter.ReadInt(ctx, "> ", 1, 5)

		// Then: the closed stream is reported
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Stops waiting when the context is cancelled", func(t *testing.T) {
		// Given: an input that never delivers a line
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })
		prompter := NewPrompter(reader, io.Discard, NewStyle(false))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		// When: reading with a cancelled context
		_, err := prompter.ReadInt(cancelled, "> ", 1, 5)

		// Then: the cancellation is returned
		require.ErrorIs(t, err, context.Canceled)
	})
}

// endlessReader never runs out of "1" lines.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		if i%2 == 0 {
			p[i] = '1'
		} else {
			p[i] = '\n'
		}
	}
	return len(p), nil
}

func TestPrompter_Close(t *testing.T) {
	// Given: a prompter over an input that never ends
	prompter := NewPrompter(endlessReader{}, io.Discard, NewStyle(false))
	value, err := prompter.ReadInt(context.Background(), "> ", 1, 9)
	require.NoError(t, err)
	require.Equal(t, 1, value)

	// When: the prompter is closed
	prompter.Close()
	prompter.Close()

	// Then: the reader goroutine stops and closes its channel
	drained := make(chan struct{})
	go func() {
		for range prompter.lines {
		}
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("reader goroutine still running after Close")
	}
}

func TestPrompter_ReadLine(t *testing.T) {
	// Given: two lines of input
	out := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader("hello\nworld"), out, NewStyle(false))

	// When: reading them
	first, err := prompter.ReadLine(context.Background(), "? ")
	require.NoError(t, err)
	second, err := prompter.ReadLine(context.Background(), "? ")
	require.NoError(t, err)
	_, err = prompter.ReadLine(context.Background(), "? ")

	// Then: both lines come back in order, then the stream is closed
	assert.Equal(t, "hello", first)
	assert.Equal(t, "world", second)
	require.ErrorIs(t, err, apperror.ErrInputClosed)
	assert.Equal(t, "? ? ? ", out.String())
}
