//go:build !linux

package main

import (
	"errors"
	"runtime"
)

func openSource(path string, grab bool) (frameSource, error) {
	return nil, errors.New("evdev devices are not supported on " + runtime.GOOS)
}
