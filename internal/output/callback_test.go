package output

import (
	"testing"

	"spindle/internal/cells"
	"spindle/internal/tracklist"
)

func newTestCallback(t *testing.T, queue <-chan []float32, channels int) (*Callback, *cells.Volume, *cells.PlayState, *cells.CurrentSample, *cells.CurrentTrack) {
	t.Helper()
	tl := &tracklist.TrackList{
		Tracks:       []tracklist.Track{{SampleRate: 44100, Channels: channels, Samples: 1_000_000}},
		TotalSamples: 1_000_000,
	}
	vol := cells.NewVolume(100)
	ps := cells.NewPlayState(true)
	sample := cells.NewCurrentSample(0)
	track := cells.NewCurrentTrack(0)

	cb := New(Config{
		Queue:     queue,
		Volume:    vol,
		PlayState: ps,
		Sample:    sample,
		Track:     track,
		TrackList: tl,
		Channels:  channels,
	})
	return cb, vol, ps, sample, track
}

func TestCallbackPausedIsIdempotent(t *testing.T) {
	queue := make(chan []float32, 1)
	queue <- []float32{1, 1, 1, 1}
	cb, _, ps, sample, _ := newTestCallback(t, queue, 2)
	ps.Toggle() // pause

	data := make([]float32, 4)
	for i := range data {
		data[i] = 99 // poison, must be overwritten with zeros
	}

	cb.Fill(data)

	for i, v := range data {
		if v != 0 {
			t.Fatalf("data[%d] = %v, want 0 while paused", i, v)
		}
	}
	if sample.Get() != 0 {
		t.Fatalf("current sample advanced to %d while paused, want 0", sample.Get())
	}
}

func TestCallbackScalesByVolume(t *testing.T) {
	queue := make(chan []float32, 1)
	queue <- []float32{1, -1, 1, -1}
	cb, vol, _, _, _ := newTestCallback(t, queue, 2)
	vol.Set(50)

	data := make([]float32, 4)
	cb.Fill(data)

	for i, v := range data {
		want := float32(0.5)
		if i%2 == 1 {
			want = -0.5
		}
		if v != want {
			t.Fatalf("data[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestCallbackUnderRunZeroPads(t *testing.T) {
	queue := make(chan []float32, 1)
	queue <- []float32{1, 1} // only 1 frame available, 2 requested
	cb, _, _, sample, _ := newTestCallback(t, queue, 2)

	data := make([]float32, 4)
	cb.Fill(data)

	if data[0] != 1 || data[1] != 1 {
		t.Fatalf("expected the first frame to carry real data, got %v", data[:2])
	}
	if data[2] != 0 || data[3] != 0 {
		t.Fatalf("expected the second frame to be zero-padded, got %v", data[2:])
	}
	if got := sample.Get(); got != 1 {
		t.Fatalf("current sample = %d, want 1 (only 1 frame actually emitted)", got)
	}
}

func TestCallbackAdvancesCurrentTrack(t *testing.T) {
	queue := make(chan []float32, 10)
	queue <- []float32{1, 1, 1, 1} // 2 frames
	queue <- []float32{1, 1, 1, 1} // 2 more frames
	cb, _, _, _, track := newTestCallback(t, queue, 2)
	cb.trackList = &tracklist.TrackList{
		Tracks: []tracklist.Track{
			{SampleRate: 44100, Channels: 2, Samples: 1},
			{SampleRate: 44100, Channels: 2, Samples: 100},
		},
		TotalSamples: 101,
	}

	// The track index is looked up from the position before each callback's
	// advance, so the second callback (starting at frame 2) reports track 1.
	data := make([]float32, 4)
	cb.Fill(data)
	cb.Fill(data)

	if got := track.Load(); got != 1 {
		t.Fatalf("current track = %d, want 1 (first track is only 1 frame long)", got)
	}
}

func TestCallbackSignalsDoneOnClosedQueue(t *testing.T) {
	queue := make(chan []float32)
	close(queue)
	cb, _, _, _, _ := newTestCallback(t, queue, 2)

	data := make([]float32, 4)
	cb.Fill(data)

	for _, v := range data {
		if v != 0 {
			t.Fatalf("expected zero-filled data on immediate end-of-stream, got %v", data)
		}
	}
	if !cb.Done() {
		t.Fatal("Done() should be true after the queue closes with no residual data")
	}
}
