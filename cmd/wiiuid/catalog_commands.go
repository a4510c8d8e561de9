package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wiiuid/internal/titlecatalog"
	"wiiuid/internal/titledb"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the persistent title catalog",
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogLookupCommand(ctx))
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))

	return catalogCmd
}

func (c *commandContext) withCatalog(cmd *cobra.Command, fn func(*titlecatalog.Catalog) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return err
	}
	catalog, err := titlecatalog.Open(c.sessionContext(cmd), cfg.Catalog.Path, logger)
	if err != nil {
		return err
	}
	defer catalog.Close()
	return fn(catalog)
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <titles.txt>",
		Short: "Import a CODE = Name title database into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := titledb.Load(args[0])
			if err != nil {
				return err
			}
			return ctx.withCatalog(cmd, func(catalog *titlecatalog.Catalog) error {
				result, err := catalog.Import(ctx.sessionContext(cmd), args[0], db)
				if err != nil {
					return fmt.Errorf("import %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d titles from %s into %s (import %s)\n",
					result.Entries, result.Source, catalog.Path(), result.ID)
				return nil
			})
		},
	}
}

func newCatalogLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <CODE>",
		Short: "Show the catalog name stored for a title code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.TrimSpace(args[0])
			return ctx.withCatalog(cmd, func(catalog *titlecatalog.Catalog) error {
				name, err := catalog.Get(ctx.sessionContext(cmd), code)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s%s\n", code, titledb.Separator, name)
				return nil
			})
		},
	}
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize catalog contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, func(catalog *titlecatalog.Catalog) error {
				stats, err := catalog.Stats(ctx.sessionContext(cmd))
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, stats)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Catalog: %s\n", stats.Path)
				fmt.Fprintf(out, "Titles:  %d\n", stats.Titles)
				fmt.Fprintf(out, "Imports: %d\n", stats.Imports)
				fmt.Fprintf(out, "Populated: %s\n", yesNo(stats.Titles > 0))
				if last := stats.LastImport; last != nil {
					fmt.Fprintf(out, "Last import: %s from %s (%d titles, %s)\n",
						last.ImportedAt.Local().Format(time.DateTime), last.Source, last.Entries, last.ID)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit stats as JSON")
	return cmd
}
