package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/spf13/cobra"
)

var categoriesFlags struct {
	categories string
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category tree",
	Long: `Print the category tree the wizard offers, one category per line.

Subcategories are indented under their parent. Each line shows the id used in
the gig payload and the slug.`,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().StringVarP(&categoriesFlags.categories, "categories", "c", "", "Category tree file (YAML or JSON)")
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("", categoriesFlags.categories, "")
	if err != nil {
		return err
	}

	cats, err := gig.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	printCategories(cmd.OutOrStdout(), cats)
	return nil
}

// printCategories writes the flattened tree, indenting children.
func printCategories(w io.Writer, cats gig.Categories) {
	for _, c := range cats.Flatten() {
		indent := ""
		if c.ParentID != "" {
			indent = strings.Repeat("  ", depth(cats, c))
		}
		_, _ = fmt.Fprintf(w, "%s%s  [%s] /%s\n", indent, c.Name, c.ID, c.Slug)
	}
}

func depth(cats gig.Categories, c gig.Category) int {
	d := 0
	for c.ParentID != "" {
		parent, ok := cats.Find(c.ParentID)
		if !ok {
			break
		}
		c = parent
		d++
	}
	return d
}
