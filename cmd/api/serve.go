package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gateway_reservas/internal/adapter/http/routes"
	"gateway_reservas/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var serveFlags struct {
	port int
}

func newServeFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.IntVarP(&serveFlags.port, "port", "p", 0, "override PORT")
	return fs
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP gateway (default command)",
		RunE:  runServe,
	}
	cmd.Flags().AddFlagSet(newServeFlags())
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveFlags.port > 0 {
		cfg.HTTP.Port = serveFlags.port
	}

	if err := cfg.Validate(); err != nil {
		// A missing base URL keeps the server up so it can answer with
		// configuration errors; an unsafe token or bad timeout does not.
		if errors.Is(err, config.ErrUnsafeToken) || errors.Is(err, config.ErrInvalidTimeout) {
			return err
		}
		log.Printf("[config] starting degraded: %v", err)
	}
	log.Printf("[config] erp base_url=%q auth=%s timeout=%s allowed_origin=%s audit=%t",
		cfg.ERP.BaseURL, cfg.ERP.Credentials.Mode(), cfg.ERP.Timeout, cfg.HTTP.AllowedOrigin, cfg.Audit.Enabled)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return routes.Run(ctx, cfg)
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		if err := os.Setenv("GATEWAY_CONFIG_FILE", cfgFile); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load()
}

