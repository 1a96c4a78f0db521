// Package stderr captures the raw fd-2 output of the C audio stack
// PortAudio links against (ALSA on Linux, in particular, is notorious for
// device-probe warnings printed straight to fd 2 rather than through any
// Go-visible stream). Left alone, that output would land in the middle of
// the alternate screen buffer bubbletea owns and scramble the TUI.
package stderr

// Messages delivers captured fd-2 lines for the caller to log or surface
// in the UI instead of letting them hit the terminal directly. Buffered
// generously enough that a noisy ALSA init sequence at startup never
// blocks the capturing goroutine.
var Messages = make(chan string, 256)
