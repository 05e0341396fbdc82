// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/menu-engine/internal/detail"
	"github.com/pdiddy/menu-engine/pkg/types"
)

var detailCmd = &cobra.Command{
	Use:   "detail [title]",
	Short: "Extract structured details from one beverage title",
	Long: `Detail parses a single beverage title and prints the extracted record as
JSON. The category comes from --category, or is derived from --section the
same way menu sections are classified: a name containing "Wine" is a wine
list, anything else is beer.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetail,
}

func init() {
	detailCmd.Flags().String("section", "", "menu section the title was listed under")
	detailCmd.Flags().String("category", "", "force the category: wine or beer")

	rootCmd.AddCommand(detailCmd)
}

func runDetail(cmd *cobra.Command, args []string) error {
	title := args[0]
	section, _ := cmd.Flags().GetString("section")
	categoryFlag, _ := cmd.Flags().GetString("category")

	category := detail.ClassifySection(section)
	if categoryFlag != "" {
		category = types.Category(strings.ToLower(categoryFlag))
		if !category.Valid() {
			return fmt.Errorf("unsupported category %q: use wine or beer", categoryFlag)
		}
	}

	d, err := detail.Extract(title, category)
	if err != nil {
		logger.Debug("no detail extracted",
			zap.String("title", title),
			zap.String("category", string(category)),
			zap.String("reason", detail.FailureReason(err)))
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
