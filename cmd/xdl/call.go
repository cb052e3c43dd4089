package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <function> [args...]",
	Short: "Invoke one engine function and print the result",
	Long: `Invoke a single engine function by name with scalar arguments.

Examples:
  xdl call sin 1.5707963
  xdl call sqrt 16
  xdl call pi`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) {
	name := args[0]
	vals := make([]float64, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: argument %q is not a number\n", a)
			os.Exit(1)
		}
		vals = append(vals, v)
	}

	ctx, err := newContext(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Close()

	result, err := ctx.Call(name, vals...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}
