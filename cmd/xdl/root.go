package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/xdl-lang/xdl/bridge"
)

var rootCmd = &cobra.Command{
	Use:   "xdl",
	Short: "Call into the XDL native numeric engine",
	Long: `xdl drives the XDL engine's shared library from the command line.

The engine artifact is found automatically (target/debug, target/release,
the working directory, then the bare platform name) or pinned explicitly
with --lib or the XDL_LIBRARY environment variable.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("lib", "", "Path to the engine library (overrides search)")
}

func newContext(cmd *cobra.Command) (*bridge.Context, error) {
	lib, _ := cmd.Root().PersistentFlags().GetString("lib")

	var opts []bridge.Option
	if lib != "" {
		opts = append(opts, bridge.WithPath(lib))
	}
	return bridge.New(opts...)
}
