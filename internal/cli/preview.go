package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dotnetdave/ai-usage-badges/pkg/badge"
	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

// previewCommand creates the preview command, writing one badge SVG to stdout.
// Useful for piping into a file or viewer without generating the whole tree:
//
//	badgegen preview ai-drafted > /tmp/badge.svg
func (c *CLI) previewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "preview [label-or-slug]",
		Short: "Write a single badge SVG to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			b, ok := badge.Find(cfg.Badges, args[0])
			if !ok {
				return errors.New(errors.ErrCodeBadgeNotFound, "no badge matching %q (try 'badgegen list')", args[0])
			}

			doc := svg.NewBuilder(cfg.Style).Render(b)
			_, err = os.Stdout.Write(doc.Bytes())
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config overriding style and catalog")
	return cmd
}
