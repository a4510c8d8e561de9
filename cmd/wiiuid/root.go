package main

import (
	"github.com/spf13/cobra"

	"wiiuid/internal/config"
	"wiiuid/internal/listing"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

type listFlags struct {
	decodePrefix bool
	titleDB      string
	format       string
	catalog      bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags listFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "wiiuid [flags] <uid.sys>",
		Short:         "List the titles recorded in a Wii uid.sys file",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			opts := listingOptions(cmd, cfg, flags, args[0])
			return listing.Run(ctx.sessionContext(cmd), opts, cmd.OutOrStdout(), logger)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.Flags().BoolVarP(&flags.decodePrefix, "decode-prefix", "d", false, "Show the category label of each title")
	rootCmd.Flags().StringVarP(&flags.titleDB, "title-db", "t", "", "Title database (CODE = Name per line)")
	rootCmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: text, table or json")
	rootCmd.Flags().BoolVar(&flags.catalog, "catalog", false, "Resolve names from the title catalog when no title database is given")

	rootCmd.AddCommand(newCatalogCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))

	return rootCmd
}

// listingOptions merges config defaults with explicitly set flags.
func listingOptions(cmd *cobra.Command, cfg *config.Config, flags listFlags, recordPath string) listing.Options {
	opts := listing.Options{
		RecordPath:   recordPath,
		DecodePrefix: cfg.Output.DecodePrefix,
		Format:       cfg.Output.Format,
		TitleDBPath:  cfg.TitleDB.Path,
		UseCatalog:   cfg.Catalog.Enabled,
		CatalogPath:  cfg.Catalog.Path,
	}
	set := cmd.Flags().Changed
	if set("decode-prefix") {
		opts.DecodePrefix = flags.decodePrefix
	}
	if set("format") {
		opts.Format = flags.format
	}
	if set("title-db") {
		opts.TitleDBPath = flags.titleDB
	}
	if set("catalog") {
		opts.UseCatalog = flags.catalog
	}
	return opts
}
