package output

// Device is the host audio backend interface of §6: given a channel
// count and sample rate, it registers a callback invoked periodically
// with a writable float32 slice, and provides Start/Stop/Close lifecycle
// control.
type Device interface {
	// Open registers fill to be invoked periodically with a slice of
	// length framesPerCallback*channels.
	Open(channels int, sampleRate int, framesPerCallback int, fill func(data []float32)) error
	// Start begins invoking the registered callback.
	Start() error
	// Stop halts invocation of the callback. The device may be Started
	// again afterward.
	Stop() error
	// Close releases the device. It must be called exactly once.
	Close() error
}
