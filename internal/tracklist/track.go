// Package tracklist holds the playlist data model: Track, TrackList, and
// the audio parameters and skip-ahead budget derived from them.
package tracklist

import (
	"errors"
	"fmt"

	"github.com/pchchv/flac"
	"github.com/pchchv/flac/meta"
)

// MissingFieldError reports a required tag or stream-info field absent
// from a track's file.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Path, e.Field)
}

// ErrInvalidStreamInfo is returned when a file's stream-info block is
// absent or reports a non-positive sample rate, channel count, or sample
// total.
var ErrInvalidStreamInfo = errors.New("tracklist: invalid stream info")

// Track is an immutable description of a single playable FLAC file.
type Track struct {
	Path        string
	Channels    int
	SampleRate  int
	Samples     uint64 // total frames per channel
	Album       string
	AlbumArtist string
	Artist      string
	Title       string
	TrackNumber int
}

// fromStream builds a Track from an already-opened FLAC stream and the
// path it was opened from. The stream's Blocks must include a
// VorbisComment block; its Info must be non-nil (flac.Parse guarantees
// this or returns an error first).
func fromStream(path string, stream *flac.Stream) (Track, error) {
	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 || info.NSamples == 0 {
		return Track{}, ErrInvalidStreamInfo
	}

	comments, err := vorbisComments(stream)
	if err != nil {
		return Track{}, err
	}

	title, ok := comments["title"]
	if !ok {
		return Track{}, &MissingFieldError{Path: path, Field: "title"}
	}
	album, ok := comments["album"]
	if !ok {
		return Track{}, &MissingFieldError{Path: path, Field: "album"}
	}
	artist, ok := comments["artist"]
	if !ok {
		return Track{}, &MissingFieldError{Path: path, Field: "artist"}
	}
	albumArtist, ok := comments["album_artist"]
	if !ok {
		return Track{}, &MissingFieldError{Path: path, Field: "album_artist"}
	}
	trackNum, ok := comments["track"]
	if !ok {
		return Track{}, &MissingFieldError{Path: path, Field: "track"}
	}

	n, err := parseTrackNumber(trackNum)
	if err != nil {
		return Track{}, &MissingFieldError{Path: path, Field: "track"}
	}

	return Track{
		Path:        path,
		Channels:    int(info.NChannels),
		SampleRate:  int(info.SampleRate),
		Samples:     info.NSamples,
		Album:       album,
		AlbumArtist: albumArtist,
		Artist:      artist,
		Title:       title,
		TrackNumber: n,
	}, nil
}

// FromPath opens path, reads its stream-info and Vorbis comments, and
// builds a Track. Construction fails if any required field is missing.
func FromPath(path string) (Track, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return Track{}, fmt.Errorf("%s: %w", path, err)
	}
	defer stream.Close()

	return fromStream(path, stream)
}

func vorbisComments(stream *flac.Stream) (map[string]string, error) {
	for _, block := range stream.Blocks {
		vc, ok := block.Body.(*meta.VorbisComment)
		if !ok {
			continue
		}
		out := make(map[string]string, len(vc.Tags))
		for _, kv := range vc.Tags {
			out[normalizeKey(kv[0])] = kv[1]
		}
		return out, nil
	}
	return nil, errors.New("tracklist: no vorbis comment block")
}

func normalizeKey(k string) string {
	out := make([]byte, len(k))
	for i := 0; i < len(k); i++ {
		c := k[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func parseTrackNumber(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, errors.New("empty track number")
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			// Tolerate "track/total" style values by stopping at the
			// first non-digit, mirroring common Vorbis comment practice.
			break
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
