package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xdl-lang/xdl/native"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the resolved engine library path",
	Args:  cobra.NoArgs,
	Run:   runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) {
	lib, _ := cmd.Root().PersistentFlags().GetString("lib")

	path, err := native.Locate(lib)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(path)
}
