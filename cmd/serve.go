package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"photodiary/internal/config"
	"photodiary/internal/handlers"
)

func newServeCmd() *cobra.Command {
	var port string
	var providerName string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the photo analysis web server",
		Long: `Starts the photodiary HTTP API on the specified port.

Photos uploaded to /api/upload (multipart file or JSON image URL) are
analyzed immediately and stored as sessions; /api/history exposes recent
run metrics.`,
		Example: `  # Start server on default port 8888
  photodiary serve

  # Start server on custom port with Gemini
  photodiary serve --port 3000 --provider gemini`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			service, loader, history, err := buildService(cfg, providerName)
			if err != nil {
				return err
			}

			handler := handlers.New(cfg, service, loader, history)

			mux := http.NewServeMux()
			mux.HandleFunc("/api/sessions", handler.HandleSessions)
			mux.HandleFunc("/api/sessions/", handler.HandleSessionDetail)
			mux.HandleFunc("/api/upload", handler.HandleUpload)
			mux.HandleFunc("/api/history", handler.HandleHistory)
			mux.HandleFunc("/static/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Photodiary API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&providerName, "provider", "ollama", "Inference provider (ollama or gemini)")

	return cmd
}
