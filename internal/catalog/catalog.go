package catalog

import (
	"log"

	"ergoshop/internal/models"
	"ergoshop/internal/store"
)

const storageKey = "AllProducts"

// Catalog serves the product list. Products are seeded once on first run and
// immutable afterwards.
type Catalog struct {
	store store.Store
}

func New(s store.Store) *Catalog {
	return &Catalog{store: s}
}

// Ensure seeds the sample products if the catalog is empty or absent.
func (c *Catalog) Ensure() error {
	var products []models.Product
	found, err := c.store.Get(storageKey, &products)
	if err != nil {
		return err
	}
	if found && len(products) > 0 {
		return nil
	}

	log.Println("[CATALOG] [INFO] seeding sample products")
	return c.store.Put(storageKey, sampleProducts())
}

func (c *Catalog) List() ([]models.Product, error) {
	var products []models.Product
	if _, err := c.store.Get(storageKey, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns the product with the given id. The second return reports
// whether it exists.
func (c *Catalog) Get(id string) (models.Product, bool, error) {
	products, err := c.List()
	if err != nil {
		return models.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Product{}, false, nil
}

// Categories returns the distinct category names in first-seen order.
func (c *Catalog) Categories() ([]string, error) {
	products, err := c.List()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(products))
	categories := make([]string, 0, len(products))
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories, nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "P001", Name: "Logitech Mouse", Price: 25, Description: "Comfortable ambidextrous wireless mouse", Image: "assets/mouse1.png", Category: "Mouses"},
		{ID: "P002", Name: "TECKNET Ergonomic Mouse", Price: 30, Description: "Vertical ergonomic mouse", Image: "assets/mouse2.png", Category: "Mouses"},
		{ID: "P003", Name: "AeroCurve Pro", Price: 20, Description: "Curved gaming mousepad", Image: "assets/mouse3.png", Category: "Mouses"},
		{ID: "P004", Name: "Perixx Keyboard", Price: 80, Description: "Split-key keyboard", Image: "assets/keyboard1.png", Category: "Keyboards"},
		{ID: "P005", Name: "Incase Sculpt Ergonomic Keyboard", Price: 90, Description: "Sculpt ergonomic keyboard", Image: "assets/keyboard2.png", Category: "Keyboards"},
		{ID: "P006", Name: "PatioMage Ergonomic Office Chair", Price: 200, Description: "Full adjust ergonomic office chair", Image: "assets/chair1.png", Category: "Chairs"},
	}
}
