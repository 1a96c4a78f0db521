package decode

// SampleBuffer is a heap-allocated, contiguous sequence of interleaved
// float32 samples whose length is a multiple of the stream's channel
// count. Ownership moves from the Reader to the output callback through
// the bounded queue; neither side retains a reference once handed off.
type SampleBuffer = []float32
