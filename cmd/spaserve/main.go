// Command spaserve serves the current directory as a single-page
// application: requests without a file extension that match no file on
// disk get the root index document, so client-side routing works on a
// plain static server.
//
// Usage:
//
//	spaserve [port]
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

const defaultPort = 8000

func main() {
	if err := run(os.Args[1:]); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	flags := flag.NewFlagSet("spaserve", flag.ExitOnError)
	index := flags.String("index", "", "root index document (default index.html)")
	configPath := flags.String("config", "", "path to a devserve.toml or devserve.yaml")
	flags.Usage = usage
	if err := flags.Parse(argv); err != nil {
		return err
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cfg, flags.Args(), *index)
	if err != nil {
		return err
	}

	srv, err := serve.NewSPA(opts)
	if err != nil {
		return err
	}

	fmt.Println("🚀 SPA server started")
	if title := page.TitleOf(filepath.Join(opts.Dir, opts.Index)); title != "" {
		fmt.Printf("📄 App: %s\n", title)
	}
	fmt.Printf("📍 http://localhost:%d\n", srv.Port())
	fmt.Println("🔧 Unknown routes are rewritten to", "/"+opts.Index)
	fmt.Println("⏹  Press Ctrl+C to stop")
	fmt.Println("--------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil {
		return err
	}

	fmt.Println("\n🛑 Server stopped")
	return nil
}

// resolveOptions merges the index flag and the positional port over the
// config values. A non-numeric port argument is a fatal usage error.
func resolveOptions(cfg *config.Config, args []string, indexFlag string) (serve.SPAOptions, error) {
	opts := serve.SPAOptions{Port: defaultPort, Dir: ".", Index: "index.html"}
	if cfg.Port != 0 {
		opts.Port = cfg.Port
	}
	if cfg.Dir != "" {
		opts.Dir = cfg.Dir
	}
	if cfg.Index != "" {
		opts.Index = cfg.Index
	}
	if indexFlag != "" {
		opts.Index = indexFlag
	}

	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil {
			return serve.SPAOptions{}, fmt.Errorf("port must be a number, got %q", args[0])
		}
		opts.Port = p
	}
	return opts, nil
}

func usage() {
	fmt.Fprint(os.Stderr, `spaserve - single-page-application file server

Usage:
  spaserve [flags] [port]

Arguments:
  port   TCP port to serve on (default 8000)

Flags:
  --index NAME     root index document (default index.html)
  --config PATH    read settings from a devserve.toml or devserve.yaml

Examples:
  spaserve
  spaserve 3000
`)
}
