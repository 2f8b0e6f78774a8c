package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/internal/storage"
)

var serverPort int

const (
	shutdownTimeout   = 10 * time.Second
	retentionInterval = 24 * time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			appConfig.Port = serverPort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c, err := catalog.Default()
		if err != nil {
			return err
		}
		store, err := storage.Open(ctx, appConfig.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		srv, err := site.New(site.Options{
			Catalog:          c,
			Store:            store,
			Relay:            newRelay(appConfig, logger),
			Log:              logger,
			StaticDir:        appConfig.StaticDir,
			AdminUsername:    appConfig.Admin.Username,
			AdminPassword:    appConfig.Admin.Password,
			VisitorRetention: appConfig.VisitorRetention,
			SecureCookies:    !appConfig.Debug(),
		})
		if err != nil {
			return err
		}
		go srv.RunRetention(ctx, retentionInterval)

		httpServer := &http.Server{
			Addr:              fmt.Sprintf(":%d", appConfig.Port),
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening",
				zap.String("addr", httpServer.Addr),
				zap.String("relay", appConfig.ContactRelay),
				zap.String("db", appConfig.DBPath),
			)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}

func newRelay(cfg config.Config, log *zap.Logger) contact.Relay {
	switch cfg.ContactRelay {
	case config.RelayFormSubmit:
		return contact.FormSubmitRelay{
			Endpoint: cfg.FormSubmitEndpoint,
			To:       cfg.ToEmail,
			Client:   &http.Client{Timeout: 15 * time.Second},
		}
	case config.RelaySMTP:
		return contact.SMTPRelay{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			To:   cfg.ToEmail,
		}
	default:
		return contact.LogRelay{Log: log}
	}
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "port to listen on, overrides PORT")
	rootCmd.AddCommand(serveCmd)
}
