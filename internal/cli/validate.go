package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/vvka-141/sitemapgen/internal/logging"
	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

var validateCmd = &cobra.Command{
	Use:   "validate [project_path]",
	Short: "Validate every entry without writing output",
	Long: `Build every entry declared in sitemapgen.yaml, reporting protocol
violations without writing any file. Alternate-link language codes that
are not recognizable BCP 47 tags are reported as warnings; crawlers
ignore such links rather than rejecting the sitemap.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("env-file", "", "Load environment overrides from this file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	var failed int
	var firstErr error
	for i, ec := range cfg.Entries {
		ec.URL = cfg.ResolveURL(ec.URL)
		if cfg.Safe {
			ec.Safe = true
		}

		for _, link := range ec.Links {
			if _, parseErr := language.Parse(link.Lang); parseErr != nil {
				log.Info("Warning: entry %d (%s): unrecognized hreflang %q", i+1, ec.URL, link.Lang)
			}
		}

		entry, err := sitemap.NewEntry(ec)
		if err == nil {
			_, err = sitemap.Render(entry)
		}
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			log.Error("entry %d (%s): %v", i+1, ec.URL, err)
			continue
		}
		log.Verbose("entry %d (%s): ok", i+1, ec.URL)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d entries invalid: %w", failed, len(cfg.Entries), firstErr)
	}
	log.Info("All %d entries valid", len(cfg.Entries))
	return nil
}
