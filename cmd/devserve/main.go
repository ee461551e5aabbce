// Command devserve is a CORS-open, cache-disabled static file server for
// local front-end debugging.
//
// Usage:
//
//	devserve [flags] [port] [directory]
//
// Port defaults to 8080 and directory to the current one. When the port
// is busy the next free one within 100 is taken.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/f4ah6o/devserve-go/internal/config"
	"github.com/f4ah6o/devserve-go/internal/page"
	"github.com/f4ah6o/devserve-go/internal/serve"
	"github.com/f4ah6o/devserve-go/internal/ui"
)

const defaultPort = 8080

func main() {
	if err := run(os.Args[1:]); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	flags := flag.NewFlagSet("devserve", flag.ExitOnError)
	reload := flags.Bool("reload", false, "inject the auto-reload script into HTML pages")
	noColor := flags.Bool("no-color", false, "disable colored output")
	configPath := flags.String("config", "", "path to a devserve.toml or devserve.yaml")
	flags.Usage = usage
	if err := flags.Parse(argv); err != nil {
		return err
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}

	port, dir, err := resolveArgs(cfg, flags.Args(), defaultPort)
	if err != nil {
		return err
	}

	if *noColor || cfg.NoColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColor()
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		return fmt.Errorf("directory does not exist: %s", dir)
	}

	srv, err := serve.NewDebug(serve.DebugOptions{
		Port:   port,
		Dir:    absDir,
		Reload: *reload || cfg.Reload,
	})
	if err != nil {
		return err
	}
	if srv.Port() != port {
		ui.Warning("port %d is busy, using %d instead", port, srv.Port())
	}

	index := cfg.Index
	if index == "" {
		index = "index.html"
	}
	ui.Banner(ui.BannerInfo{
		Dir:        absDir,
		LocalURL:   fmt.Sprintf("http://localhost:%d", srv.Port()),
		NetworkURL: fmt.Sprintf("http://%s:%d", serve.LocalIP(), srv.Port()),
		StartedAt:  time.Now(),
		Reload:     *reload || cfg.Reload,
		Title:      page.TitleOf(filepath.Join(absDir, index)),
	})

	return serveUntilInterrupt(srv.Serve, srv.Shutdown)
}

// resolveArgs merges the positional arguments over the config values.
// A non-numeric port argument is a fatal usage error.
func resolveArgs(cfg *config.Config, args []string, fallbackPort int) (port int, dir string, err error) {
	port = fallbackPort
	if cfg.Port != 0 {
		port = cfg.Port
	}
	dir = "."
	if cfg.Dir != "" {
		dir = cfg.Dir
	}

	if len(args) > 0 {
		p, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return 0, "", fmt.Errorf("port must be a number, got %q", args[0])
		}
		port = p
	}
	if len(args) > 1 {
		dir = args[1]
	}
	return port, dir, nil
}

// serveUntilInterrupt runs the accept loop and treats SIGINT as the
// normal shutdown path.
func serveUntilInterrupt(serveFn func() error, shutdown func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- serveFn() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil {
		return err
	}

	fmt.Println("\n\n🛑 Server stopped")
	fmt.Println("👋 Thanks for using devserve!")
	return nil
}

func usage() {
	fmt.Fprint(os.Stderr, `devserve - static file server for front-end debugging

Usage:
  devserve [flags] [port] [directory]

Arguments:
  port        TCP port to serve on (default 8080)
  directory   directory to serve (default current directory)

Flags:
  --reload         inject an auto-reload script into HTML pages
  --config PATH    read settings from a devserve.toml or devserve.yaml
  --no-color       disable colored output

Examples:
  devserve
  devserve 3000 ./frontend
  devserve --reload 8080 ./dist
`)
}
