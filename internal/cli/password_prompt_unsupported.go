//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import "os"

func hideInput(_ *os.File) (func(), error) {
	return nil, errInputVisible
}
