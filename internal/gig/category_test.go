package gig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const categoriesYAML = `
- id: design
  name: Design & Creatie
  children:
    - id: logo-design
      name: Logo ontwerp
    - name: Web Design
- id: writing
  name: Schrijven & Vertalen
  slug: writing
  children:
    - id: copywriting
      name: Copywriting
`

func TestParseCategories_YAML(t *testing.T) {
	cats, err := ParseCategories([]byte(categoriesYAML), false)
	require.NoError(t, err)

	require.Len(t, cats.Roots(), 2)
	require.Equal(t, "design-and-creatie", cats[0].Slug)

	web, ok := cats.Find("web-design")
	require.True(t, ok, "id derived from slug")
	require.Equal(t, "Web Design", web.Name)
	require.Equal(t, "design", web.ParentID)

	require.True(t, cats.IsChildOf("logo-design", "design"))
	require.False(t, cats.IsChildOf("copywriting", "design"))
	require.Equal(t, "Copywriting", cats.Name("copywriting"))
	require.Equal(t, "", cats.Name("missing"))
}

func TestCategories_Flatten(t *testing.T) {
	cats, err := ParseCategories([]byte(categoriesYAML), false)
	require.NoError(t, err)

	var ids []string
	for _, c := range cats.Flatten() {
		ids = append(ids, c.ID)
	}
	require.Equal(t, []string{"design", "logo-design", "web-design", "writing", "copywriting"}, ids)
}

func TestCategories_CheckDraft(t *testing.T) {
	cats, err := ParseCategories([]byte(categoriesYAML), false)
	require.NoError(t, err)

	tests := []struct {
		name     string
		category string
		sub      string
		want     error
	}{
		{"parent only", "design", "", nil},
		{"own child", "design", "logo-design", nil},
		{"child of other parent", "writing", "logo-design", ErrSubcategoryMismatch},
		{"unknown subcategory", "design", "nope", ErrSubcategoryMismatch},
		{"unknown category", "gone", "", ErrUnknownCategory},
		{"no category", "", "", ErrCategoryRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			d.CategoryID = tt.category
			d.SubcategoryID = tt.sub
			err := cats.CheckDraft(d)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseCategories_DuplicateID(t *testing.T) {
	_, err := ParseCategories([]byte(`[{"id":"a","name":"A","children":[{"id":"a","name":"Again"}]}]`), true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestLoadCategories_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	data := `[{"id":"1","name":"Development","children":[{"id":"2","name":"Backend"}]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cats, err := LoadCategories(path)
	require.NoError(t, err)
	require.Len(t, cats.ChildrenOf("1"), 1)
	require.Equal(t, "1", cats.ChildrenOf("1")[0].ParentID)
	require.Equal(t, "backend", cats.ChildrenOf("1")[0].Slug)
}

func TestLoadCategories_MissingFile(t *testing.T) {
	_, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
