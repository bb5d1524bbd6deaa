package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nomina",
		Short:         "Payroll tools for an employee list kept in YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("input", "i", "employees.yaml", "YAML file with the employee forms")

	rootCmd.AddCommand(
		exportCmd(),
		tableCmd(),
	)
	return rootCmd
}
