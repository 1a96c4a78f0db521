package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"spindle/internal/config"
	"spindle/internal/errmsg"
	"spindle/internal/logging"
	"spindle/internal/mpris"
	"spindle/internal/notify"
	"spindle/internal/output"
	"spindle/internal/player"
	"spindle/internal/stderr"
	"spindle/internal/tracklist"
	"spindle/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	var paused bool
	var timeCode string
	flag.BoolVar(&paused, "paused", false, "start paused")
	flag.StringVarP(&timeCode, "time", "t", "", "skip ahead to a time code (MM:SS or HH:MM:SS)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpParseCLIArgs, fmt.Errorf("no files or directories given")))
		return 1
	}

	var skip tracklist.SkipSecs
	if timeCode != "" {
		var err error
		skip, err = tracklist.ParseSkip(timeCode)
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpParseSkipTime, err))
			return 1
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLoadConfig, err))
		return 1
	}

	// --paused overrides the configured default only when the flag was
	// actually given; otherwise cfg.StartPaused decides.
	startPaused := cfg.StartPaused
	if flag.CommandLine.Changed("paused") {
		startPaused = paused
	}

	logger, closeLog, err := logging.Setup(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}
	defer func() { _ = closeLog() }()

	if err := stderr.Start(); err == nil {
		defer stderr.Stop()
		go func() {
			for line := range stderr.Messages {
				logger.Warn("stderr", "line", line)
			}
		}()
	}

	tracks, err := tracklist.FromFiles(files)
	if err != nil {
		logger.Error(errmsg.Format(errmsg.OpConstructTrackList, err))
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConstructTrackList, err))
		return 1
	}
	if len(tracks.Tracks) == 0 {
		err := fmt.Errorf("no flac files found in the given paths")
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConstructTrackList, err))
		return 1
	}

	device, err := output.NewPortAudioDevice()
	if err != nil {
		logger.Error(errmsg.Format(errmsg.OpOpenDevice, err))
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpOpenDevice, err))
		return 1
	}
	p := player.New(tracks, device, player.Options{
		InitialVolume: uint8(cfg.InitialVolume),
		StartPlaying:  !startPaused,
		Skip:          skip,
		Logger:        logger,
		QueueCapacity: cfg.QueueCapacity,
	})

	if err := p.Start(); err != nil {
		logger.Error(errmsg.Format(errmsg.OpStartPlayback, err))
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStartPlayback, err))
		return 1
	}

	mprisAdapter, err := mpris.New(p)
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpMPRISRegister, err))
	} else {
		defer func() { _ = mprisAdapter.Close() }()
	}

	notifier, err := notify.New()
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpSendNotify, err))
		notifier = nil
	}
	notifyCfg := cfg.GetNotificationsConfig()
	notifyOn := notifier != nil && *notifyCfg.Enabled && *notifyCfg.NowPlaying

	model := ui.New(p, notifier, notifyOn)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error(errmsg.Format(errmsg.OpInitialize, err))
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}

	return 0
}
