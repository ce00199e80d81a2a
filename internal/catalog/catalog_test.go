// ABOUTME: Tests for catalog construction, lookup, and file loading
// ABOUTME: Covers the built-in records, duplicate ids, and YAML/JSON parsing
package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harper/recommend/internal/models"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}

	wantNames := []string{"Acer Nitro 5", "Dell G15 5511", "ASUS TUF Gaming F15", "MSI GF63 Thin", "Lenovo Legion 5"}
	for i, p := range c.All() {
		if p.ID != i+1 {
			t.Errorf("products[%d].ID = %d, want %d", i, p.ID, i+1)
		}
		if p.Name != wantNames[i] {
			t.Errorf("products[%d].Name = %q, want %q", i, p.Name, wantNames[i])
		}
		if p.Category != "Laptops" {
			t.Errorf("products[%d].Category = %q, want Laptops", i, p.Category)
		}
		if len(p.Specs) != 6 {
			t.Errorf("products[%d] has %d specs, want 6", i, len(p.Specs))
		}
		if p.ImageURL != nil {
			t.Errorf("products[%d].ImageURL should be nil", i)
		}
	}
}

func TestGet(t *testing.T) {
	c := Default()

	p, err := c.Get(3)
	if err != nil {
		t.Fatalf("Get(3) failed: %v", err)
	}
	if p.Name != "ASUS TUF Gaming F15" {
		t.Errorf("Get(3).Name = %q", p.Name)
	}

	_, err = c.Get(999)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Get(999) error = %v, want ErrProductNotFound", err)
	}

	if !c.Has(1) || c.Has(0) {
		t.Error("Has() returned wrong membership")
	}
}

func TestAll_ReturnsCopies(t *testing.T) {
	c := Default()

	all := c.All()
	all[0].Name = "changed"
	all[0].Specs["memory"] = "1GB"

	p, _ := c.Get(1)
	if p.Name != "Acer Nitro 5" || p.Specs["memory"] != "16GB DDR4 RAM" {
		t.Error("mutating All() result should not affect catalog")
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]models.Product{
		{ID: 1, Name: "a"},
		{ID: 1, Name: "b"},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("New() error = %v, want ErrDuplicateID", err)
	}
}

func TestNew_RejectsInvalid(t *testing.T) {
	if _, err := New([]models.Product{{ID: 0, Name: "zero"}}); err == nil {
		t.Error("expected error for zero id")
	}
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
- id: 10
  name: Pixel 8
  description: OLED phone
  price: 699
  originalPrice: 799
  imageUrl: null
  rating: 4.4
  reviewCount: 12
  category: Phones
  specs:
    storage: 128GB
  recommendation: Good camera
- id: 11
  name: Galaxy S23
  price: 799
  category: Phones
`)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	p, _ := c.Get(10)
	if p.OriginalPrice != 799 || p.ReviewCount != 12 || p.Specs["storage"] != "128GB" {
		t.Errorf("unexpected decoded product: %+v", p)
	}
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`[{"id": 1, "name": "Thing", "price": 9.5, "category": "Misc", "specs": {"color": "red"}}]`)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	p, _ := c.Get(1)
	if p.Price != 9.5 || p.Specs["color"] != "red" {
		t.Errorf("unexpected decoded product: %+v", p)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty list", "[]"},
		{"not a list", "id: 1"},
		{"duplicate", "[{id: 1, name: a}, {id: 1, name: b}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.data)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("Load(\"\") should return built-in catalog")
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("- {id: 42, name: Answer, category: Misc}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if !c.Has(42) {
		t.Error("file catalog should contain id 42")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}
