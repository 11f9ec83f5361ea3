package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/fulldump/goconfig"

	"github.com/studyport/studyport-tui/app"
	"github.com/studyport/studyport-tui/client"
	"github.com/studyport/studyport-tui/config"
	"github.com/studyport/studyport-tui/store"
	"github.com/studyport/studyport-tui/style"
	"github.com/studyport/studyport-tui/task"
)

var version = "dev"

func main() {
	cfg := config.Default()
	goconfig.Read(&cfg)

	if cfg.Version {
		fmt.Printf("studyport %s\n", version)
		return
	}

	if cfg.NoColor {
		os.Setenv("NO_COLOR", "1")
	}

	profileDir := profilePath(cfg.Profile)

	st, err := store.Open(profileDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "studyport: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	applyTheme(cfg.Theme)

	c := client.New(cfg.BaseURL)
	if cfg.Token != "" {
		c.SetToken(cfg.Token)
	}

	app.Version = version
	m := app.New(c, st, cfg)

	// AltScreen and mouse mode are configured on the View struct in
	// bubbletea v2, not as ProgramOptions.
	p := tea.NewProgram(m)

	// Background notification poller. Stop() blocks until the goroutine
	// exits, so the program never receives a Send after shutdown begins.
	if cfg.PollIntervalSec > 0 {
		poller := task.Every(
			time.Duration(cfg.PollIntervalSec)*time.Second,
			func(ctx context.Context) {
				p.Send(app.FetchNotifications(c))
			},
		)
		poller.Start(context.Background())
		defer poller.Stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "studyport: %v\n", err)
		os.Exit(1)
	}
}

// profilePath resolves the state directory: ~/.studyport for the default
// profile, ~/.studyport/profiles/<name> for named ones.
func profilePath(profile string) string {
	home, _ := os.UserHomeDir()
	if profile == "" {
		return filepath.Join(home, ".studyport")
	}
	return filepath.Join(home, ".studyport", "profiles", profile)
}

// applyTheme sets the named theme, auto-detecting from the terminal
// background when cfg.Theme is "auto" or unknown.
func applyTheme(name string) {
	if name != "auto" && style.SetTheme(name) {
		return
	}
	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		style.SetTheme("dark")
	} else {
		style.SetTheme("light")
	}
}
