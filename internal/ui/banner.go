package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// BannerInfo is everything the debug server shows on startup.
type BannerInfo struct {
	Dir        string
	LocalURL   string
	NetworkURL string
	StartedAt  time.Time
	Reload     bool
	Title      string // app title from the index document, may be empty
}

// Banner prints the startup panel with the resolved directory, the
// reachable URLs and the usage hints.
func Banner(info BannerInfo) {
	var b strings.Builder
	if info.Title != "" {
		fmt.Fprintf(&b, "📄 App:       %s\n", info.Title)
	}
	fmt.Fprintf(&b, "📁 Directory: %s\n", info.Dir)
	fmt.Fprintf(&b, "🌐 Local:     %s\n", info.LocalURL)
	fmt.Fprintf(&b, "🌐 Network:   %s\n", info.NetworkURL)
	fmt.Fprintf(&b, "⏰ Started:   %s", info.StartedAt.Format("2006-01-02 15:04:05"))

	pterm.DefaultBox.
		WithTitle("🚀 devserve").
		WithTitleTopLeft().
		Println(b.String())

	Hint("Press Ctrl+C to stop")
	Hint("CORS is wide open and caching is disabled")
	if info.Reload {
		Hint("Pages reload automatically when files change")
	} else {
		Hint("Edit a file, then refresh the page")
	}
	fmt.Println("\n📊 Request log:")
}
