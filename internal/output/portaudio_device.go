package output

import (
	"github.com/gordonklaus/portaudio"
)

// defaultFramesPerCallback is used when the caller does not have a
// stronger opinion; PortAudio is free to pick a different size if the
// backend requires it, the Callback does not assume a fixed period.
const defaultFramesPerCallback = 1024

// PortAudioDevice is the Device backed by github.com/gordonklaus/portaudio,
// the host audio backend wired for this engine.
type PortAudioDevice struct {
	stream *portaudio.Stream
}

// NewPortAudioDevice initializes the PortAudio library. Callers must call
// Close when done to release it.
func NewPortAudioDevice() (*PortAudioDevice, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	return &PortAudioDevice{}, nil
}

func (d *PortAudioDevice) Open(channels int, sampleRate int, framesPerCallback int, fill func(data []float32)) error {
	if framesPerCallback <= 0 {
		framesPerCallback = defaultFramesPerCallback
	}

	stream, err := portaudio.OpenDefaultStream(
		0, channels,
		float64(sampleRate),
		framesPerCallback,
		func(_, out []float32) {
			fill(out)
		},
	)
	if err != nil {
		return err
	}
	d.stream = stream
	return nil
}

func (d *PortAudioDevice) Start() error { return d.stream.Start() }
func (d *PortAudioDevice) Stop() error  { return d.stream.Stop() }

func (d *PortAudioDevice) Close() error {
	if d.stream != nil {
		if err := d.stream.Close(); err != nil {
			return err
		}
	}
	return portaudio.Terminate()
}
