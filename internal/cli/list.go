package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

// listCommand creates the list command, printing the badge catalog.
func (c *CLI) listCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the badge catalog",
		Long:  "List the badge catalog with slugs and computed badge widths.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			builder := svg.NewBuilder(cfg.Style)
			fmt.Println(StyleTitle.Render(fmt.Sprintf("%d badges", len(cfg.Badges))))
			for _, b := range cfg.Badges {
				printBadgeRow(b.Slug, b.Label, builder.Width(b.Label))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config overriding style and catalog")
	return cmd
}

// splitAndTrim splits a comma-separated list and trims whitespace.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
