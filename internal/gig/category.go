package gig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// Category is a node of the marketplace category tree.
type Category struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Slug     string     `json:"slug,omitempty" yaml:"slug,omitempty"`
	ParentID string     `json:"parentId,omitempty" yaml:"parent_id,omitempty"`
	Children []Category `json:"children,omitempty" yaml:"children,omitempty"`
}

// Categories is a category forest. The wizard only reads it.
type Categories []Category

// LoadCategories reads a category tree from a YAML or JSON file.
// The format is picked from the file extension; .json is JSON, anything else
// is parsed as YAML.
func LoadCategories(path string) (Categories, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return ParseCategories(data, strings.EqualFold(filepath.Ext(path), ".json"))
}

// ParseCategories decodes a category tree and fills in missing slugs and
// parent ids.
func ParseCategories(data []byte, isJSON bool) (Categories, error) {
	var cats Categories
	if isJSON {
		if err := json.Unmarshal(data, &cats); err != nil {
			return nil, fmt.Errorf("parsing categories json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cats); err != nil {
			return nil, fmt.Errorf("parsing categories yaml: %w", err)
		}
	}
	normalize(cats, "")
	if err := cats.checkIDs(); err != nil {
		return nil, err
	}
	return cats, nil
}

func normalize(cats []Category, parentID string) {
	for i := range cats {
		c := &cats[i]
		if c.Slug == "" {
			c.Slug = slug.Make(c.Name)
		}
		if c.ID == "" {
			c.ID = c.Slug
		}
		if parentID != "" {
			c.ParentID = parentID
		}
		normalize(c.Children, c.ID)
	}
}

func (cs Categories) checkIDs() error {
	seen := make(map[string]bool)
	for _, c := range cs.Flatten() {
		if c.ID == "" {
			return fmt.Errorf("category %q has no id", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// Flatten returns every node depth-first, parents before their children.
func (cs Categories) Flatten() []Category {
	var out []Category
	var walk func([]Category)
	walk = func(nodes []Category) {
		for _, c := range nodes {
			out = append(out, c)
			walk(c.Children)
		}
	}
	walk(cs)
	return out
}

// Find resolves a category by id anywhere in the tree.
func (cs Categories) Find(id string) (Category, bool) {
	if id == "" {
		return Category{}, false
	}
	for _, c := range cs.Flatten() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Name returns the category name for id, or "" if unknown.
func (cs Categories) Name(id string) string {
	c, _ := cs.Find(id)
	return c.Name
}

// Roots returns the top-level categories.
func (cs Categories) Roots() []Category {
	return cs
}

// ChildrenOf returns the direct children of the category with the given id.
func (cs Categories) ChildrenOf(id string) []Category {
	c, ok := cs.Find(id)
	if !ok {
		return nil
	}
	return c.Children
}

// IsChildOf reports whether childID is a direct child of parentID.
func (cs Categories) IsChildOf(childID, parentID string) bool {
	for _, c := range cs.ChildrenOf(parentID) {
		if c.ID == childID {
			return true
		}
	}
	return false
}

// CheckDraft reports whether the draft's category choice exists in the tree
// and its subcategory, if any, belongs to the chosen category.
func (cs Categories) CheckDraft(d Draft) error {
	if d.CategoryID == "" {
		return ErrCategoryRequired
	}
	if _, ok := cs.Find(d.CategoryID); !ok {
		return ErrUnknownCategory
	}
	if d.SubcategoryID != "" && !cs.IsChildOf(d.SubcategoryID, d.CategoryID) {
		return ErrSubcategoryMismatch
	}
	return nil
}
