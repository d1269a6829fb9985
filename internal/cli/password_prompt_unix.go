//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

// hideInput turns off echo but keeps line editing and signals, so the
// operator can still correct a typo or abort with Ctrl-C.
func hideInput(stdin *os.File) (func(), error) {
	fd := int(stdin.Fd())
	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		// Not a terminal, typically piped input.
		return nil, err
	}

	muted := *saved
	muted.Lflag &^= unix.ECHO
	muted.Lflag |= unix.ICANON | unix.ISIG
	muted.Iflag |= unix.ICRNL
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &muted); err != nil {
		return nil, err
	}

	restore := *saved
	return func() {
		_ = unix.IoctlSetTermios(fd, ioctlSetTermios, &restore)
	}, nil
}
