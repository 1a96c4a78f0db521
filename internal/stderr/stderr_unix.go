//go:build linux || darwin

package stderr

import (
	"bufio"
	"os"

	"golang.org/x/sys/unix"
)

var (
	savedStderr int
	pipeWriter  *os.File
)

// Start redirects file descriptor 2 into an internal pipe and begins
// forwarding complete lines to Messages. ALSA and other C libraries
// linked into the audio backend write straight to fd 2, bypassing
// os.Stderr; left alone, that output corrupts the TUI's alternate
// screen buffer.
func Start() error {
	dup, err := unix.Dup(unix.Stderr)
	if err != nil {
		return err
	}
	savedStderr = dup

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	if err := unix.Dup2(int(w.Fd()), unix.Stderr); err != nil {
		return err
	}
	pipeWriter = w

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case Messages <- scanner.Text():
			default:
			}
		}
	}()

	return nil
}

// WriteOriginal writes msg to the file descriptor fd 2 pointed to
// before Start redirected it, bypassing the capture pipe.
func WriteOriginal(msg string) {
	unix.Write(savedStderr, []byte(msg)) //nolint:errcheck
}

// Stop restores the original fd 2 and closes the capture pipe.
func Stop() {
	if savedStderr != 0 {
		_ = unix.Dup2(savedStderr, unix.Stderr)
	}
	if pipeWriter != nil {
		_ = pipeWriter.Close()
	}
}
