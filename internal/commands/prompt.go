package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readLine prompts on stdout and reads a single trimmed line from stdin.
func readLine(label string) (string, error) {
	fmt.Fprintf(os.Stdout, "%s: ", label)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// readPassword prompts on stdout and reads a password without echo. It
// falls back to a plain line read when stdin is not a terminal.
func readPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(label)
	}

	fmt.Fprintf(os.Stdout, "%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(raw), nil
}
