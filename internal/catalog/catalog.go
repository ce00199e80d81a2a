// ABOUTME: Read-only product catalog with id lookup
// ABOUTME: Loaded once at startup from the built-in records or a YAML/JSON file
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harper/recommend/internal/models"
)

var (
	// ErrProductNotFound is returned when an id has no catalog record
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateID is returned when two records share an id
	ErrDuplicateID = errors.New("duplicate product id")
)

// Catalog is a fixed ordered sequence of products
type Catalog struct {
	products []models.Product
	byID     map[int]int
}

// New builds a catalog, keeping the given order and rejecting invalid or duplicate records
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog record: %w", err)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}

	return c, nil
}

// LoadFile reads a catalog from a YAML or JSON file containing a list of products
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON product list
func Parse(data []byte) (*Catalog, error) {
	var products []models.Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, errors.New("catalog contains no products")
	}
	return New(products)
}

// Load returns the file catalog when path is set, otherwise the built-in one
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// All returns copies of every product in catalog order
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

// Get returns the product with the given id
func (c *Catalog) Get(id int) (models.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	return c.products[idx].Clone(), nil
}

// Has reports whether id is in the catalog
func (c *Catalog) Has(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}
