package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapgen/internal/logging"
	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

var generateCmd = &cobra.Command{
	Use:   "generate [project_path]",
	Short: "Build the sitemap and write it to the configured output",
	Long: `Build every entry declared in sitemapgen.yaml and write the resulting
urlset document to the configured output file.

Examples:
  # Generate from the current directory
  sitemapgen generate

  # Generate from a project directory, printing to stdout
  sitemapgen generate ./site --output -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", `Output file (overrides config; "-" for stdout)`)
	generateCmd.Flags().String("env-file", "", "Load environment overrides from this file")
	generateCmd.Flags().Bool("pretty", false, "Pretty-print the XML output")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	log := logging.NewConsoleLogger(getVerboseFlag(cmd))

	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := loadProject(path, envFile)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Output = out
	}
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		cfg.Pretty = true
	}

	entries, err := buildEntries(cfg)
	if err != nil {
		return err
	}
	log.Verbose("Constructed %d entries from %s", len(entries), path)

	xml, err := sitemap.RenderURLSet(entries, cfg.Pretty)
	if err != nil {
		return err
	}

	out := cfg.Output
	if out == "" {
		out = "sitemap.xml"
	}
	if out == "-" {
		fmt.Fprintln(os.Stdout, xml)
		return nil
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(path, out)
	}
	if err := os.WriteFile(out, []byte(xml), 0644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	log.Info("Wrote %d entries to %s", len(entries), out)
	return nil
}
