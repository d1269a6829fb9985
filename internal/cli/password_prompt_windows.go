//go:build windows

package cli

import (
	"os"

	"golang.org/x/sys/windows"
)

func hideInput(stdin *os.File) (func(), error) {
	console := windows.Handle(stdin.Fd())
	var saved uint32
	if err := windows.GetConsoleMode(console, &saved); err != nil {
		return nil, err
	}

	muted := saved&^windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_LINE_INPUT
	if err := windows.SetConsoleMode(console, muted); err != nil {
		return nil, err
	}
	return func() {
		_ = windows.SetConsoleMode(console, saved)
	}, nil
}
