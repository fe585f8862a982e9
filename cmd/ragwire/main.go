package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danmuck/ragwire/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ragwire",
		Short: "GraphRAG protobuf codec and transcoding gateway",
		Long: `ragwire encodes and decodes the GraphRAG message set in protobuf wire
format, inspects raw payloads, and serves an HTTP gateway that transcodes
between protobuf and JSON, YAML or CBOR.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env")
			if err := loadEnv(envFile); err != nil {
				return err
			}
			logging.ConfigureRuntime()
			return nil
		},
	}

	rootCmd.PersistentFlags().String("env", ".env", "Optional dotenv file loaded before running")

	rootCmd.AddCommand(
		newVersionCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newInspectCmd(),
		newMessagesCmd(),
		newServeCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// loadEnv applies a dotenv file without overriding variables already set.
// A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
