// Package ui implements spindle's terminal interface: a track table, a
// progress/volume bar, and the keybindings that drive the Player's
// shared cells. Playback state lives in the Player's atomics, not in
// this model, so the model polls on a tick rather than reacting to
// events pushed from the audio thread.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spindle/internal/notify"
	"spindle/internal/player"
	"spindle/internal/tracklist"
	"spindle/internal/ui/playerbar"
)

const pollInterval = 250 * time.Millisecond

type tickMsg time.Time

var trackColumns = []table.Column{
	{Title: "#", Width: 3},
	{Title: "Title", Width: 30},
	{Title: "Artist", Width: 20},
	{Title: "Album", Width: 20},
	{Title: "Length", Width: 6},
}

// Model is the root bubbletea model for spindle's TUI.
type Model struct {
	player   *player.Player
	notifier notify.Notifier
	notifyOn bool
	table    table.Model

	lastTrack int
	width     int
	height    int
}

// New constructs a Model around p. notifier may be a stub if desktop
// notifications are disabled or unavailable.
func New(p *player.Player, notifier notify.Notifier, notifyOn bool) Model {
	rows := make([]table.Row, len(p.TrackList.Tracks))
	for i, t := range p.TrackList.Tracks {
		rows[i] = trackRow(t)
	}

	tbl := table.New(
		table.WithColumns(trackColumns),
		table.WithRows(rows),
		table.WithFocused(false),
	)
	tbl.SetCursor(0)

	return Model{
		player:    p,
		notifier:  notifier,
		notifyOn:  notifyOn,
		table:     tbl,
		lastTrack: -1,
	}
}

func trackRow(t tracklist.Track) table.Row {
	duration := time.Duration(float64(t.Samples) / float64(t.SampleRate) * float64(time.Second))
	return table.Row{
		fmt.Sprintf("%d", t.TrackNumber),
		t.Title,
		t.Artist,
		t.Album,
		formatDuration(duration),
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles keybindings and the poll tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(3, m.height-4))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			_ = m.player.Stop()
			return m, tea.Quit
		case "p":
			m.player.Cells.PlayState.Toggle()
		case "up":
			m.player.Cells.Volume.Up(1)
		case "down":
			m.player.Cells.Volume.Down(1)
		case "shift+up":
			m.player.Cells.Volume.Up(10)
		case "shift+down":
			m.player.Cells.Volume.Down(10)
		}

	case tickMsg:
		m.syncCursor()
		m.notifyTrackChange()
		if m.player.Done() {
			_ = m.player.Stop()
			return m, tea.Quit
		}
		return m, tickCmd()
	}

	return m, nil
}

// syncCursor keeps the table's highlighted row aligned with current_track.
func (m *Model) syncCursor() {
	idx := m.player.Cells.Track.Load()
	if idx >= 0 && idx < len(m.player.TrackList.Tracks) {
		m.table.SetCursor(idx)
	}
}

// notifyTrackChange fires a desktop notification the first time the
// poll loop observes a new current_track value.
func (m *Model) notifyTrackChange() {
	idx := m.player.Cells.Track.Load()
	if idx == m.lastTrack {
		return
	}
	m.lastTrack = idx

	if !m.notifyOn || idx < 0 || idx >= len(m.player.TrackList.Tracks) {
		return
	}
	t := m.player.TrackList.Tracks[idx]
	_, _ = m.notifier.Notify(notify.Notification{
		Title:   t.Title,
		Body:    t.Artist + " — " + t.Album,
		Timeout: 4000,
		Urgency: notify.UrgencyNormal,
	})
}

// View renders the track table and the player bar.
func (m Model) View() string {
	idx := m.player.Cells.Track.Load()
	bar := m.renderBar(idx)

	width := m.width
	if width <= 0 {
		width = 80
	}
	return m.table.View() + "\n" + playerbar.BarStyle.Width(width-2).Render(bar)
}

func (m Model) renderBar(idx int) string {
	playing := m.player.Cells.PlayState.IsPlaying()
	vol := m.player.Cells.Volume.Get()

	tracks := m.player.TrackList.Tracks
	var position, duration time.Duration
	if idx >= 0 && idx < len(tracks) {
		track := tracks[idx]
		sample := m.player.Cells.Sample.Get()
		start := m.player.TrackList.GetStartPoint(idx)
		elapsed := uint64(0)
		if sample > start {
			elapsed = sample - start
		}
		position = time.Duration(float64(elapsed) / float64(track.SampleRate) * float64(time.Second))
		duration = time.Duration(float64(track.Samples) / float64(track.SampleRate) * float64(time.Second))
	}

	progress := playerbar.RenderProgressBar(position, duration, 50, playing)
	volume := playerbar.RenderVolume(vol, 10)

	return lipgloss.JoinHorizontal(lipgloss.Center, progress, "   ", volume)
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
