package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// WaitForKey prints a prompt and blocks until one key is read from in.
// A terminal is switched to raw mode so a single key press is enough.
func WaitForKey(in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprint(out, "\nPress any key to exit"); err != nil {
		return err
	}
	defer fmt.Fprintln(out)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("failed to switch terminal to raw mode: %w", err)
		}
		defer func() {
			if err := term.Restore(int(f.Fd()), state); err != nil {
				slog.Error("failed to restore terminal", "error", err)
			}
		}()
	}

	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
