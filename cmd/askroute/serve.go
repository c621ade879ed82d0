package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dshills/askroute/internal/docwatch"
	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/internal/mcp"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var docPath string
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && docPath == "" {
				return fmt.Errorf("--watch requires --doc")
			}
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defer a.close()

			runCtx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if docPath != "" {
				if err := loadDocument(a, docPath); err != nil {
					return err
				}
			}
			if watch {
				w, err := docwatch.NewWatcher(docPath, a.engine, a.logger.With("component", "docwatch"))
				if err != nil {
					return err
				}
				defer func() { _ = w.Close() }()
				go watchDocument(runCtx, w.Run, a.logger)
			}

			srv := mcp.NewServer(a.engine, a.logger.With("component", "mcp"))

			errChan := make(chan error, 1)
			go func() {
				errChan <- srv.Serve(runCtx)
			}()

			select {
			case err := <-errChan:
				if err != nil {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			case <-runCtx.Done():
				a.logger.Info("shutting down")
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&docPath, "doc", "", "Plain-text document to load at startup")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the document when it changes on disk")
	return cmd
}

// watchDocument runs the watcher until ctx ends. Cancellation is the normal
// shutdown path and is not reported.
func watchDocument(ctx context.Context, run func(context.Context) error, logger *slog.Logger) {
	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("document watcher stopped", logging.FieldError, err)
	}
}

func loadDocument(a *app, path string) error {
	doc, err := docwatch.Load(path)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	a.engine.SetDocContext(doc)
	a.logger.Info("document loaded", "name", doc.Name, logging.FieldCount, len(doc.Text))
	return nil
}
