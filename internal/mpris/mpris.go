//go:build linux

// Package mpris exposes the Player over the MPRIS D-Bus media-player
// interface. Only the operations the engine actually supports are wired
// up: PlayPause/Play/Pause/Stop, volume, position, and metadata. Next,
// Previous, Seek, Shuffle, and repeat modes have no equivalent in a
// forward-only, no-repeat engine and are reported as unsupported.
package mpris

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"spindle/internal/player"
)

// ErrUnsupported is returned by MPRIS calls the engine has no way to
// honor: seeking, track navigation, shuffling, and repeat modes.
var ErrUnsupported = errors.New("mpris: operation not supported by this engine")

// Adapter connects a Player to MPRIS over D-Bus.
type Adapter struct {
	player *player.Player
	server *server.Server
}

// New creates and starts an MPRIS adapter over p.
func New(p *player.Player) (*Adapter, error) {
	a := &Adapter{player: p}

	root := &rootAdapter{}
	playerAd := &playerAdapter{player: p}

	a.server = server.NewServer("spindle", root, playerAd)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // not supported
}

func (r *rootAdapter) Quit() error {
	return nil // app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "spindle", nil
}

//nolint:revive // method name required by interface
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/flac"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the
// optional sub-interfaces go-mpris-server recognizes.
type playerAdapter struct {
	player *player.Player
}

func (p *playerAdapter) Next() error {
	return ErrUnsupported
}

func (p *playerAdapter) Previous() error {
	return ErrUnsupported
}

func (p *playerAdapter) Pause() error {
	if p.player.Cells.PlayState.IsPlaying() {
		p.player.Cells.PlayState.Toggle()
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.player.Cells.PlayState.Toggle()
	return nil
}

func (p *playerAdapter) Stop() error {
	return p.player.Stop()
}

func (p *playerAdapter) Play() error {
	if p.player.Cells.PlayState.IsPaused() {
		p.player.Cells.PlayState.Toggle()
	}
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return ErrUnsupported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return ErrUnsupported
}

//nolint:revive // method name required by interface
func (p *playerAdapter) OpenUri(_ string) error {
	return ErrUnsupported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch {
	case p.player.Done():
		return types.PlaybackStatusStopped, nil
	case p.player.Cells.PlayState.IsPlaying():
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // not supported, always 1.0
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	tl := p.player.TrackList
	idx := p.player.Cells.Track.Load()
	if idx < 0 || idx >= len(tl.Tracks) {
		return types.Metadata{}, nil
	}
	t := tl.Tracks[idx]

	duration := time.Duration(float64(t.Samples) / float64(t.SampleRate) * float64(time.Second))

	return types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(t.Path)),
		Length:      types.Microseconds(duration.Microseconds()),
		Title:       t.Title,
		Artist:      []string{t.Artist},
		Album:       t.Album,
		TrackNumber: t.TrackNumber,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.player.Cells.Volume.Get()) / 100.0, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return p.player.Cells.Volume.Set(uint8(v * 100))
}

func (p *playerAdapter) Position() (int64, error) {
	tl := p.player.TrackList
	idx := p.player.Cells.Track.Load()
	if idx < 0 || idx >= len(tl.Tracks) {
		return 0, nil
	}
	rate := tl.Tracks[idx].SampleRate
	sample := p.player.Cells.Sample.Get() - tl.GetStartPoint(idx)
	return time.Duration(float64(sample) / float64(rate) * float64(time.Second)).Microseconds(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return len(p.player.TrackList.Tracks) > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus. The
// engine has no repeat modes, so it always reports "none".
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return types.LoopStatusNone, nil
}

func (p *playerAdapter) SetLoopStatus(_ types.LoopStatus) error {
	return ErrUnsupported
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle. The
// playlist order is fixed; shuffling is never enabled.
func (p *playerAdapter) Shuffle() (bool, error) {
	return false, nil
}

func (p *playerAdapter) SetShuffle(_ bool) error {
	return ErrUnsupported
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
