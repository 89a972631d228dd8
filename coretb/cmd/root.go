// Package cmd provides the command-line interface for coretb.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const envPrefix = "CORETB_"

// newRootCmd creates the base command, writing to the given streams.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "coretb",
		Short: "coretb drives a synchronous core cycle by cycle and records " +
			"its signals.",
		Long: `coretb loads a program of 32-bit instruction words, resets the ` +
			`core under test, feeds it one instruction per clock cycle and ` +
			`records every signal after each clock edge. Flags can also be ` +
			`set with CORETB_* environment variables or a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().String("env", ".env",
		"file of CORETB_* variables to load; ignored if missing")

	rootCmd.AddCommand(newRunCmd(stdout, stderr))
	rootCmd.AddCommand(newInspectCmd(stdout))

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	return 0
}

// envName maps a flag name to its environment variable.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnv loads the .env file and fills every flag the user did not set from
// its environment variable.
func applyEnv(cmd *cobra.Command, names ...string) error {
	envFile, _ := cmd.Flags().GetString("env")
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "loading %s", envFile)
		}
	}

	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}

		v, ok := os.LookupEnv(envName(name))
		if !ok {
			continue
		}

		if err := cmd.Flags().Set(name, v); err != nil {
			return errors.Wrapf(err, "applying %s", envName(name))
		}
	}

	return nil
}
