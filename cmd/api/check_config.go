package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Load and validate configuration, then exit",
		Long: `check-config loads configuration exactly as serve does and reports every
problem that would make the gateway unusable. Credentials are never printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "erp.base_url:   %s\n", cfg.ERP.BaseURL)
			fmt.Fprintf(out, "erp.auth:       %s\n", cfg.ERP.Credentials.Mode())
			fmt.Fprintf(out, "erp.timeout:    %s\n", cfg.ERP.Timeout)
			fmt.Fprintf(out, "erp.max_rps:    %g\n", cfg.ERP.MaxRPS)
			fmt.Fprintf(out, "http.port:      %d\n", cfg.HTTP.Port)
			fmt.Fprintf(out, "http.origin:    %s\n", cfg.HTTP.AllowedOrigin)
			fmt.Fprintf(out, "audit.enabled:  %t\n", cfg.Audit.Enabled)
			if cfg.Audit.Enabled {
				fmt.Fprintf(out, "audit.table:    %s\n", cfg.Audit.Table)
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration invalid:\n%w", err)
			}
			fmt.Fprintln(out, "configuration OK")
			return nil
		},
	}
}
