package catalog

import (
	"fmt"
	"strings"
)

// Category is one entry of the closed category set: a stable dataset
// identifier plus its Portuguese display name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultPrimaryName is the neutral display name used when a query
// matched no category at all.
const DefaultPrimaryName = "nossas categorias"

// entries is the full closed catalog, in dataset order. The identifiers
// match the dataset partition names; the display names are what the
// assistant is allowed to show to users.
var entries = []Category{
	{ID: "Air Conditioners", Name: "Ar-Condicionado"},
	{ID: "All Electronics", Name: "Eletrônicos"},
	{ID: "Cameras", Name: "Câmeras"},
	{ID: "Headphones", Name: "Fones de Ouvido"},
	{ID: "Home Audio", Name: "Áudio para Casa"},
	{ID: "Kitchen Appliances", Name: "Eletrodomésticos de Cozinha"},
	{ID: "Refrigerators", Name: "Geladeiras"},
	{ID: "Smart Televisions", Name: "Smart TVs"},
	{ID: "Smart Watches", Name: "Relógios Inteligentes"},
	{ID: "Smartphones", Name: "Celulares"},
	{ID: "Washing Machines", Name: "Máquinas de Lavar"},
}

// Catalog is the immutable category catalog. Loaded once at process
// start; safe for unsynchronized concurrent reads.
type Catalog struct {
	entries []Category
	byID    map[string]string
}

// New returns the default catalog.
func New() *Catalog {
	return FromCategories(entries)
}

// FromCategories builds a catalog from an explicit ordered category
// list. Used by tests to pin a small fixed set.
func FromCategories(cats []Category) *Catalog {
	byID := make(map[string]string, len(cats))
	for _, c := range cats {
		byID[c.ID] = c.Name
	}
	return &Catalog{entries: cats, byID: byID}
}

// All returns the full catalog in order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.entries))
	copy(out, c.entries)
	return out
}

// Contains reports whether id is a member of the closed set.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Translate returns the display name for id, or the id itself when it
// is unknown.
func (c *Catalog) Translate(id string) string {
	if name, ok := c.byID[id]; ok {
		return name
	}
	return id
}

// PromptList renders the catalog as "ID: Nome" lines for the intent
// analysis prompt.
func (c *Catalog) PromptList() string {
	var b strings.Builder
	for _, cat := range c.entries {
		fmt.Fprintf(&b, "%s: %s\n", cat.ID, cat.Name)
	}
	return b.String()
}
