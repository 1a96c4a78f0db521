package tracklist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInconsistentFormat is returned when TrackList construction finds
// tracks that disagree on sample rate or channel count.
var ErrInconsistentFormat = errors.New("tracklist: inconsistent sample rate or channel count")

// TrackList is an ordered, immutable sequence of Tracks plus a cached
// total sample count.
type TrackList struct {
	Tracks       []Track
	TotalSamples uint64
}

// FromFiles filters paths to existing *.flac files (expanding directories
// recursively), builds a Track for each, and verifies format homogeneity.
//
// A path denoting a directory is expanded to its *.flac descendants, in
// the order the filesystem walk visits them. A path that is neither an
// existing regular file nor a directory is skipped silently, mirroring
// the underlying walk's "keep going" behavior for transient entries.
func FromFiles(paths []string) (*TrackList, error) {
	files, err := expandFlacFiles(paths)
	if err != nil {
		return nil, err
	}

	tl := &TrackList{}
	for _, f := range files {
		t, err := FromPath(f)
		if err != nil {
			return nil, err
		}
		if len(tl.Tracks) > 0 {
			first := tl.Tracks[0]
			if t.SampleRate != first.SampleRate || t.Channels != first.Channels {
				return nil, fmt.Errorf("%w: %s is %dHz/%dch, %s is %dHz/%dch",
					ErrInconsistentFormat, first.Path, first.SampleRate, first.Channels,
					t.Path, t.SampleRate, t.Channels)
			}
		}
		tl.Tracks = append(tl.Tracks, t)
		tl.TotalSamples += t.Samples
	}

	return tl, nil
}

// expandFlacFiles accepts only existing regular files with extension
// "flac" (case-exact); directories are expanded recursively.
func expandFlacFiles(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.IsDir() {
			err := filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return nil // skip unreadable entries, keep walking
				}
				if d.IsDir() {
					return nil
				}
				if isFlacPath(path) {
					abs, err := filepath.Abs(path)
					if err != nil {
						return nil
					}
					out = append(out, abs)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if isFlacPath(p) {
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, err
			}
			out = append(out, abs)
		}
	}
	return out, nil
}

func isFlacPath(p string) bool {
	return strings.TrimPrefix(filepath.Ext(p), ".") == "flac"
}

// AudioParams is the channel count and sample rate shared by every track
// in a non-empty, format-homogeneous TrackList.
type AudioParams struct {
	ChannelCount int
	SampleRate   int
}

// DeriveAudioParams returns the AudioParams of tl. It errors on an empty
// list (homogeneity is enforced at construction, so a non-empty list
// always has consistent parameters).
func (tl *TrackList) DeriveAudioParams() (AudioParams, error) {
	if len(tl.Tracks) == 0 {
		return AudioParams{}, errors.New("tracklist: cannot derive audio params from an empty track list")
	}
	first := tl.Tracks[0]
	return AudioParams{ChannelCount: first.Channels, SampleRate: first.SampleRate}, nil
}

// FindPlaying returns the smallest index i such that the cumulative
// sample count of tracks[0..=i] exceeds s. A sample count exactly on a
// track boundary resolves to the next track.
func (tl *TrackList) FindPlaying(s uint64) int {
	var cum uint64
	for i, t := range tl.Tracks {
		cum += t.Samples
		if cum > s {
			return i
		}
	}
	return len(tl.Tracks)
}

// GetStartPoint returns the cumulative sample count of all tracks before i.
func (tl *TrackList) GetStartPoint(i int) uint64 {
	var cum uint64
	for k := 0; k < i; k++ {
		cum += tl.Tracks[k].Samples
	}
	return cum
}

// GetEndPoint returns GetStartPoint(i) + the sample count of track i.
func (tl *TrackList) GetEndPoint(i int) uint64 {
	return tl.GetStartPoint(i) + tl.Tracks[i].Samples
}

// GetSampleCount returns the sample count of track i.
func (tl *TrackList) GetSampleCount(i int) uint64 {
	return tl.Tracks[i].Samples
}
