package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reservation-gateway",
		Short: "Unit-reservation synchronization gateway in front of the ERP",
		Long: `reservation-gateway exposes unit lookup, reserve, release and sold
operations over HTTP and relays them to the ERP, which owns unit sale status.

Configuration comes from the environment (.env is loaded automatically) and,
optionally, from a YAML file given with --config or GATEWAY_CONFIG_FILE.`,
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file (overrides GATEWAY_CONFIG_FILE)")
	root.Flags().AddFlagSet(newServeFlags())

	root.AddCommand(newServeCmd())
	root.AddCommand(newCheckConfigCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
