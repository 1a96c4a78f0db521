//go:build linux || darwin

package rtprio

import (
	"golang.org/x/sys/unix"
)

// promotePlatform asks for a "nice" value of -20, the most favorable
// scheduling priority (on Linux this applies to the calling thread). It
// is a nice-value change, not a SCHED_FIFO promotion. Without
// CAP_SYS_NICE or a permitting RLIMIT_NICE the call fails and the error
// is returned; the caller logs it and the thread keeps its priority.
// The core's real-time discipline (never block, never allocate) is what
// actually keeps the callback on time, this is best-effort extra credit.
func promotePlatform() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, -20)
}
