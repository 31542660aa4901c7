package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wellness-engine/domain"
)

// Catalog holds the education and partner-offer content, loaded once at
// startup and treated as read-only afterwards. Items keep catalog order
// (selection uses it for tie-breaking) alongside an id index.
type Catalog struct {
	education []domain.CatalogItem
	offers    []domain.CatalogItem
	byID      map[string]domain.CatalogItem
}

// New builds a Catalog from item slices, validating id uniqueness.
func New(education, offers []domain.CatalogItem) (*Catalog, error) {
	byID := make(map[string]domain.CatalogItem, len(education)+len(offers))
	for _, item := range append(append([]domain.CatalogItem{}, education...), offers...) {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %q has no id", item.Title)
		}
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		byID[item.ID] = item
	}
	return &Catalog{education: education, offers: offers, byID: byID}, nil
}

// Defaults returns the built-in catalog.
func Defaults() *Catalog {
	c, err := New(DefaultEducationItems(), DefaultPartnerOffers())
	if err != nil {
		// The built-in catalog is validated by tests; a duplicate id here
		// is a programming error.
		panic(err)
	}
	return c
}

type catalogFile struct {
	Education     []domain.CatalogItem `yaml:"education"`
	PartnerOffers []domain.CatalogItem `yaml:"partner_offers"`
}

// LoadDir reads education.yaml and offers.yaml from dir, falling back to the
// built-in defaults for any file that does not exist.
func LoadDir(dir string) (*Catalog, error) {
	education, err := loadItems(filepath.Join(dir, "education.yaml"), DefaultEducationItems())
	if err != nil {
		return nil, err
	}
	offers, err := loadItems(filepath.Join(dir, "offers.yaml"), DefaultPartnerOffers())
	if err != nil {
		return nil, err
	}
	return New(education, offers)
}

func loadItems(path string, fallback []domain.CatalogItem) ([]domain.CatalogItem, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	items := append(file.Education, file.PartnerOffers...)
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no items", filepath.Base(path))
	}
	return items, nil
}

// Education returns the education items in catalog order.
func (c *Catalog) Education() []domain.CatalogItem {
	return c.education
}

// PartnerOffers returns the partner offers in catalog order.
func (c *Catalog) PartnerOffers() []domain.CatalogItem {
	return c.offers
}

// Get returns an item by id.
func (c *Catalog) Get(id string) (domain.CatalogItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}
