package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/services"
)

var errNotOwner = errors.New("you can only change your own products")

// Products prints the catalog, newest first.
func (a *App) Products(ctx context.Context) error {
	products, err := a.market.Catalog.List(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		a.printf("No products yet\n")
		return nil
	}
	for _, p := range products {
		a.printf("%s  %-40s %10s  %s\n", p.ID, p.Title, models.FormatMoney(p.Price), p.Desc)
	}
	return nil
}

// AddProduct prompts for the listing fields and adds a product sold by
// the current user. The price is taken as typed; an empty price means 0.
func (a *App) AddProduct(ctx context.Context) error {
	sellerID, err := a.requireUser()
	if err != nil {
		return err
	}

	var in models.ProductInput
	in.SellerID = sellerID

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter title", &in.Title},
		{"Enter price", &in.Price},
		{"Enter description", &in.Desc},
		{"Enter image URL (empty for a placeholder)", &in.Image},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	p, err := a.market.Catalog.Add(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Added %s (%s)\n", p.ID, p.Title)
	return nil
}

// EditProduct prompts for new values of one of the user's products.
// Empty answers keep the current value; "-" clears the description or
// the image.
func (a *App) EditProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	p, err := a.ownProduct(ctx, args[0])
	if err != nil {
		return err
	}

	var patch models.ProductPatch
	answers := make([]string, 4)
	prompts := []string{
		"Enter title [" + p.Title + "]",
		"Enter price [" + models.FormatMoney(p.Price) + "]",
		"Enter description [" + p.Desc + "] (- to clear)",
		"Enter image URL [" + p.Image + "] (- to clear)",
	}
	for i, prompt := range prompts {
		if answers[i], err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return err
		}
	}

	patch.Title = optional(answers[0])
	if answers[1] != "" {
		price, err := services.ParsePrice(answers[1])
		if err != nil {
			return err
		}
		patch.Price = &price
	}
	patch.Desc = clearable(answers[2])
	patch.Image = clearable(answers[3])

	updated, err := a.market.Catalog.Update(ctx, p.ID, patch)
	if err != nil {
		return err
	}
	a.printf("Updated %s (%s, %s)\n", updated.ID, updated.Title, models.FormatMoney(updated.Price))
	return nil
}

// RemoveProduct deletes one of the user's products. Carts and orders that
// still mention it are left alone.
func (a *App) RemoveProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	p, err := a.ownProduct(ctx, args[0])
	if err != nil {
		return err
	}
	if err := a.market.Catalog.Remove(ctx, p.ID); err != nil {
		return err
	}
	a.printf("Removed %s\n", p.ID)
	return nil
}

func (a *App) ownProduct(ctx context.Context, id string) (*models.Product, error) {
	userID, err := a.requireUser()
	if err != nil {
		return nil, err
	}
	p, err := a.market.Catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SellerID != userID {
		return nil, errNotOwner
	}
	return p, nil
}
