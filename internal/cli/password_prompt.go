package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errInputVisible     = errors.New("terminal echo cannot be disabled on this platform")
)

// promptPassword asks twice and hides the input when stdin is a terminal.
// Piped input is read as plain lines.
func promptPassword(stdin *os.File, out io.Writer) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}
	restore, err := hideInput(stdin)
	switch {
	case err == nil:
		defer restore()
	case errors.Is(err, errInputVisible):
		fmt.Fprintln(out, "Warning: the password will be visible while you type.")
	}

	reader := bufio.NewReader(stdin)
	fmt.Fprint(out, "Password: ")
	password, err := readLine(reader)
	if err != nil {
		return "", err
	}
	fmt.Fprint(out, "\nConfirm password: ")
	confirmation, err := readLine(reader)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(out)

	if password != confirmation {
		return "", errPasswordMismatch
	}
	return password, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
