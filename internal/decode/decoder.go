package decode

import (
	"io"

	"github.com/pchchv/flac"
)

// StreamParams describes the fixed audio parameters of an open file.
type StreamParams struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	MaxBlockSize  int
	TotalSamples  uint64
}

// FileDecoder opens a single audio file and yields successive blocks of
// interleaved float32 samples. It is the seam Reader depends on instead
// of github.com/pchchv/flac directly, so tests can substitute a fake.
type FileDecoder interface {
	// Open opens path and returns its fixed stream parameters.
	Open(path string) (StreamParams, error)
	// NextBlock decodes the next block and returns it as interleaved
	// float32 samples (len is a multiple of Channels). It returns io.EOF
	// once the stream is exhausted.
	NextBlock() ([]float32, error)
	// Close releases the underlying file.
	Close() error
}

// flacDecoder is the FileDecoder backed by github.com/pchchv/flac.
type flacDecoder struct {
	stream *flac.Stream
	scale  float32
}

// NewFlacDecoder returns a FileDecoder backed by github.com/pchchv/flac.
func NewFlacDecoder() FileDecoder {
	return &flacDecoder{}
}

func (d *flacDecoder) Open(path string) (StreamParams, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return StreamParams{}, err
	}
	d.stream = stream

	info := stream.Info
	// Full-scale magnitude of a signed sample at this bit depth, used to
	// normalize decoded integer samples into [-1, 1] floats.
	d.scale = 1.0 / float32(int64(1)<<(info.BitsPerSample-1))

	return StreamParams{
		Channels:      int(info.NChannels),
		SampleRate:    int(info.SampleRate),
		BitsPerSample: int(info.BitsPerSample),
		MaxBlockSize:  int(info.BlockSizeMax),
		TotalSamples:  info.NSamples,
	}, nil
}

func (d *flacDecoder) NextBlock() ([]float32, error) {
	frame, err := d.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}

	channels := len(frame.Subframes)
	blockSize := int(frame.BlockSize)
	out := make([]float32, blockSize*channels)
	for ch, sub := range frame.Subframes {
		for i := 0; i < blockSize; i++ {
			out[i*channels+ch] = float32(sub.Samples[i]) * d.scale
		}
	}
	return out, nil
}

func (d *flacDecoder) Close() error {
	if d.stream == nil {
		return nil
	}
	return d.stream.Close()
}
