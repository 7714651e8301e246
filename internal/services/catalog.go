package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/demomarket/internal/common"
	"github.com/dmitrijs2005/demomarket/internal/logging"
	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/storage"
)

// CatalogService manages product listings. New products go to the front,
// so List returns the most recently added first.
type CatalogService interface {
	SeedIfEmpty(ctx context.Context) error
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Add(ctx context.Context, in models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	Remove(ctx context.Context, id string) error
}

type catalogService struct {
	base
	logger logging.Logger
}

func NewCatalogService(store *storage.Adapter, logger logging.Logger) CatalogService {
	return &catalogService{base: newBase(store), logger: logger.With("service", "catalog")}
}

type demoProduct struct {
	title, desc, image string
	price              float64
}

var demoProducts = []demoProduct{
	{"Pro Photo Presets Pack", "10 professional Lightroom presets", "https://picsum.photos/seed/preset/600/400", 9.99},
	{"Minimal Website Template (HTML)", "A clean responsive HTML template", "https://picsum.photos/seed/template/600/400", 14.00},
	{"E-book: Productivity Hacks", "Short e-book on boosting focus", "https://picsum.photos/seed/ebook/600/400", 4.50},
}

// SeedIfEmpty writes the demo products when the catalog is empty and does
// nothing otherwise.
func (s *catalogService) SeedIfEmpty(ctx context.Context) error {
	products, err := readList[models.Product](ctx, s.store, storage.KeyProducts)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	now := s.now()
	for _, d := range demoProducts {
		products = append(products, models.Product{
			ID:        s.newID("prod"),
			Title:     d.title,
			Price:     d.price,
			Desc:      d.desc,
			Image:     d.image,
			SellerID:  models.SystemSeller,
			CreatedAt: now,
		})
	}

	if err := s.store.Write(ctx, storage.KeyProducts, products); err != nil {
		return err
	}
	s.logger.Info(ctx, "catalog seeded", "count", len(products))
	return nil
}

func (s *catalogService) List(ctx context.Context) ([]models.Product, error) {
	return readList[models.Product](ctx, s.store, storage.KeyProducts)
}

// Get resolves a product id. ErrorNotFound when no such product exists.
func (s *catalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

// Add coerces the textual price, fills in a placeholder image when none is
// given and puts the product at the front of the catalog.
func (s *catalogService) Add(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	image := in.Image
	if image == "" {
		if image, err = placeholderImage(); err != nil {
			return nil, err
		}
	}

	p := models.Product{
		ID:        s.newID("prod"),
		Title:     in.Title,
		Price:     price,
		Desc:      in.Desc,
		Image:     image,
		SellerID:  in.SellerID,
		CreatedAt: s.now(),
	}
	products = append([]models.Product{p}, products...)

	if err := s.store.Write(ctx, storage.KeyProducts, products); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update merges patch into the product with the given id. The catalog is
// not written when the id is unknown or the new price is invalid.
func (s *catalogService) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	if patch.Price != nil {
		if err := checkPrice(*patch.Price); err != nil {
			return nil, err
		}
	}

	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, common.ErrorNotFound
	}

	products[idx] = patch.Apply(products[idx])
	if err := s.store.Write(ctx, storage.KeyProducts, products); err != nil {
		return nil, err
	}

	updated := products[idx]
	return &updated, nil
}

// Remove drops the product with the given id. Unknown ids are ignored.
func (s *catalogService) Remove(ctx context.Context, id string) error {
	products, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.store.Write(ctx, storage.KeyProducts, kept)
}

// ParsePrice converts user input such as "9.99" to a number. An empty
// string is zero. Negative, NaN and infinite values are rejected with
// ErrorInvalidPrice.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrorInvalidPrice, s)
	}
	if err := checkPrice(v); err != nil {
		return 0, err
	}
	return v, nil
}

func checkPrice(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v", common.ErrorInvalidPrice, v)
	}
	return nil
}

func placeholderImage() (string, error) {
	seed, err := common.MakeRandHexString(8)
	if err != nil {
		return "", fmt.Errorf("placeholder image seed: %w", err)
	}
	return "https://picsum.photos/seed/" + seed + "/600/400", nil
}
