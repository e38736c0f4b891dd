package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Category is one entry of the catalog: identifier doubles as display
// name, plus an ordered topic list.
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Topics      []string `json:"topics"`
}

// SeedEntry is one pre-seeded category tuple rendered into the host page
// before any fetch happens. The client filters entries by the selected
// language.
type SeedEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// Catalog holds the category/topic sets per language, in file order.
type Catalog struct {
	languages []string
	entries   map[string][]Category
}

// fileFormat is the on-disk catalog shape: language code to ordered
// category list.
type fileFormat struct {
	Languages []struct {
		Code       string     `json:"code"`
		Categories []Category `json:"categories"`
	} `json:"languages"`
}

// Load reads a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(ff.Languages) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no languages", path)
	}

	c := &Catalog{entries: make(map[string][]Category)}
	for _, lang := range ff.Languages {
		c.languages = append(c.languages, lang.Code)
		c.entries[lang.Code] = lang.Categories
	}
	return c, nil
}

// New returns the catalog from CATEGORIES_FILE when set, otherwise the
// built-in default catalog.
func New() (*Catalog, error) {
	if path := os.Getenv("CATEGORIES_FILE"); path != "" {
		return Load(path)
	}
	return Default(), nil
}

// Languages returns the language codes in catalog order.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Categories returns the category identifiers valid for a language, in
// catalog order. Unknown languages yield an empty set, not an error.
func (c *Catalog) Categories(language string) []string {
	cats := c.entries[language]
	out := make([]string, 0, len(cats))
	for _, cat := range cats {
		out = append(out, cat.Name)
	}
	return out
}

// Topics returns the ordered topic list for a (category, language) pair.
// The second return is false when the category does not exist for that
// language.
func (c *Catalog) Topics(category, language string) ([]string, bool) {
	for _, cat := range c.entries[language] {
		if cat.Name == category {
			out := make([]string, len(cat.Topics))
			copy(out, cat.Topics)
			return out, true
		}
	}
	return nil, false
}

// Seed returns every (id, name, language) tuple across all languages for
// pre-populating the host page markup.
func (c *Catalog) Seed() []SeedEntry {
	var out []SeedEntry
	for _, lang := range c.languages {
		for _, cat := range c.entries[lang] {
			out = append(out, SeedEntry{ID: cat.Name, Name: cat.Name, Language: lang})
		}
	}
	return out
}
