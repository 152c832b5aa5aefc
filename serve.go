package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vscode2helix/api"
	"vscode2helix/config"
	"vscode2helix/converter"
	"vscode2helix/logger"
)

type serveFlags struct {
	listen     string
	listenPort int
}

func newServeCmd(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve theme conversions over HTTP",
		Long:  "POST a VS Code theme to / or /api/convert to receive the Helix theme, or stream documents over the /api/convert/ws websocket.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, root)
			if err != nil {
				return err
			}

			// Override config with CLI flags only if they were explicitly provided
			if cmd.Flags().Changed("listen") || cmd.Flags().Changed("listen-port") {
				cfg.ListenAddr = listenAddr(flags.listen, flags.listenPort)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return serve(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVar(&flags.listen, "listen", "127.0.0.1", "IP address to listen on (all for every interface)")
	cmd.Flags().IntVar(&flags.listenPort, "listen-port", 8080, "Port to listen on")

	return cmd
}

func listenAddr(host string, port int) string {
	if host == "" || host == "all" {
		return fmt.Sprintf(":%d", port)
	}
	return net.JoinHostPort(host, fmt.Sprint(port))
}

// serve runs the HTTP server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	apiServer := api.NewServer(converter.Document, log, api.Options{
		MaxBodyBytes: cfg.MaxBodyBytes,
		Version:      appVersion,
	})

	mux := http.NewServeMux()
	apiServer.Register(mux)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
	}
	printListeningAddresses(log, listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "server shutdown")
	}
	// Hijacked websocket connections are not tracked by Shutdown.
	apiServer.Close()

	return nil
}

func printListeningAddresses(log *logger.Logger, addr string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		log.Info("listening on http://" + addr)
		return
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		addrs, err := net.InterfaceAddrs()
		if err != nil {
			log.Info("listening on http://0.0.0.0:" + port)
			return
		}
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
				log.Info("listening on http://" + net.JoinHostPort(ipnet.IP.String(), port))
			}
		}
		log.Info("listening on http://localhost:" + port)
		return
	}

	log.Info("listening on http://" + net.JoinHostPort(host, port))
}
