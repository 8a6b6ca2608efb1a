package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive is returned when a prompt needs a terminal and stdin is not one.
var ErrNotInteractive = errors.New("stdin is not a terminal")

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadSecret prints prompt to stderr and reads a line from the terminal
// without echo.
func ReadSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotInteractive
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(b), nil
}

// ReadLine prints prompt to stderr, reads one line from the terminal and
// clears both from the screen.
func ReadLine(prompt string) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read line: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	ClearPreviousLines(os.Stderr, len(prompt)+len(line))
	return line, nil
}

// ReadAll reads r to the end and trims one trailing newline, the way
// --password-stdin input is read.
func ReadAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(b), "\n"), "\r"), nil
}
