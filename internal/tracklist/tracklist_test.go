package tracklist

import "testing"

func mkTrack(samples uint64) Track {
	return Track{SampleRate: 44100, Channels: 2, Samples: samples}
}

func TestTrackListTotals(t *testing.T) {
	tl := &TrackList{}
	for _, n := range []uint64{22050, 44100, 11025} {
		tl.Tracks = append(tl.Tracks, mkTrack(n))
		tl.TotalSamples += n
	}

	var want uint64
	for _, tr := range tl.Tracks {
		want += tr.Samples
	}
	if tl.TotalSamples != want {
		t.Fatalf("TotalSamples = %d, want %d", tl.TotalSamples, want)
	}
}

func TestFindPlayingMonotonic(t *testing.T) {
	tl := &TrackList{}
	for _, n := range []uint64{22050, 22050, 22050} {
		tl.Tracks = append(tl.Tracks, mkTrack(n))
		tl.TotalSamples += n
	}

	prev := tl.FindPlaying(0)
	for s := uint64(0); s < tl.TotalSamples; s += 1000 {
		got := tl.FindPlaying(s)
		if got < prev {
			t.Fatalf("FindPlaying not monotonic: FindPlaying(%d)=%d < previous %d", s, got, prev)
		}
		prev = got
	}
}

func TestFindPlayingBoundary(t *testing.T) {
	tl := &TrackList{}
	for _, n := range []uint64{22050, 22050, 22050} {
		tl.Tracks = append(tl.Tracks, mkTrack(n))
		tl.TotalSamples += n
	}

	boundary := tl.GetEndPoint(0) // 22050
	if got := tl.FindPlaying(boundary - 1); got != 0 {
		t.Fatalf("FindPlaying(B-1) = %d, want 0", got)
	}
	if got := tl.FindPlaying(boundary); got != 1 {
		t.Fatalf("FindPlaying(B) = %d, want 1", got)
	}
}

func TestGetStartEndSampleCount(t *testing.T) {
	tl := &TrackList{}
	for _, n := range []uint64{100, 200, 300} {
		tl.Tracks = append(tl.Tracks, mkTrack(n))
		tl.TotalSamples += n
	}

	if got := tl.GetStartPoint(0); got != 0 {
		t.Fatalf("GetStartPoint(0) = %d, want 0", got)
	}
	if got := tl.GetStartPoint(2); got != 300 {
		t.Fatalf("GetStartPoint(2) = %d, want 300", got)
	}
	if got := tl.GetEndPoint(1); got != 300 {
		t.Fatalf("GetEndPoint(1) = %d, want 300", got)
	}
	if got := tl.GetSampleCount(2); got != 300 {
		t.Fatalf("GetSampleCount(2) = %d, want 300", got)
	}
}

func TestDeriveAudioParams(t *testing.T) {
	tl := &TrackList{}
	if _, err := tl.DeriveAudioParams(); err == nil {
		t.Fatal("expected an error deriving audio params from an empty track list")
	}

	tl.Tracks = append(tl.Tracks, mkTrack(100))
	params, err := tl.DeriveAudioParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.ChannelCount != 2 || params.SampleRate != 44100 {
		t.Fatalf("unexpected params: %+v", params)
	}
}
