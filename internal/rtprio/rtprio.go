// Package rtprio promotes the calling OS thread to as close to real-time
// scheduling as the platform allows. There is no single portable API for
// this in Go; promotion is best-effort and failure is never fatal — the
// output callback falls back to normal scheduling priority and keeps
// playing.
package rtprio

import "runtime"

// Promote pins the calling goroutine to its current OS thread and asks
// the platform scheduler for elevated priority. bufferFrames and
// sampleRate describe the callback period and are accepted for parity
// with backends that size their scheduling deadline from them; Promote
// itself does not use them.
//
// Promote must be called from the goroutine that will run the hot loop;
// runtime.LockOSThread binds this goroutine to its OS thread for the
// rest of its life, which is what makes a later priority change durable.
func Promote(bufferFrames, sampleRate int) error {
	runtime.LockOSThread()
	return promotePlatform()
}
