package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/htmlreport"
	"github.com/seqdiff/seqdiff/internal/log"
	"github.com/seqdiff/seqdiff/internal/server"
)

var (
	serveAddr string
	serveLang string
)

var serveCmd = &cobra.Command{
	Use:   "serve <before> <after>",
	Short: "Serve the HTML report and re-render it when either file changes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		before, after := args[0], args[1]

		report, err := renderReport(before, after)
		if err != nil {
			return err
		}

		srv, err := server.Run(serveAddr, report)
		if err != nil {
			return err
		}
		defer srv.Shutdown(context.Background())
		log.Infof("Now serving at http://%s, press Ctrl-C to shut down", serveAddr)

		// Watch the containing directories rather than the files themselves:
		// editors commonly replace files on save, which would drop a watch on
		// the file itself.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting watcher: %v", err)
		}
		defer watcher.Close()

		watched := make(map[string]bool)
		for _, path := range []string{before, after} {
			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving %s: %v", path, err)
			}
			watched[abs] = true
			if err := watcher.Add(filepath.Dir(abs)); err != nil {
				return fmt.Errorf("starting watch: %v", err)
			}
		}

		// Setup signals to react to Ctrl-C.
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)

		for {
			select {
			case event := <-watcher.Events:
				// Absolutely no need to react to chmod.
				if event.Has(fsnotify.Chmod) {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil || !watched[abs] {
					continue
				}

				start := time.Now()
				report, err := renderReport(before, after)
				if err != nil {
					log.Errorf("failed to update report: %v", err)
					continue
				}
				srv.Replace(report)
				log.Infof("Report reloaded (%v)", time.Since(start))
			case err := <-watcher.Errors:
				return fmt.Errorf("watching: %v", err)
			case err := <-srv.Error():
				return fmt.Errorf("serving: %v", err)
			case <-sigint:
				fmt.Print("\r") // remove Ctrl-C output characters
				log.Infof("Received Ctrl-C, shutting down")
				return nil
			}
		}
	},
}

func renderReport(before, after string) ([]byte, error) {
	xb, err := os.ReadFile(before)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", before, err)
	}
	yb, err := os.ReadFile(after)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", after, err)
	}
	opt := htmlreport.LangFromFilename(before)
	if serveLang != "" {
		opt = htmlreport.Lang(serveLang)
	}
	return htmlreport.Render(before+" vs "+after, string(xb), string(yb), opt)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "address to serve the report on")
	serveCmd.Flags().StringVar(&serveLang, "lang", "", "language for syntax highlighting")
}
