package seeders

import (
	"context"

	"github.com/dwisetyadi/warungpos/app/services"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog loads a small warung starter catalog. Re-running it restocks
// instead of duplicating, since submissions merge on name.
func SeedCatalog(ctx context.Context, svc Services) error {
	items := []services.ItemInput{
		{Name: "Es Teh Manis", Price: 5000, Quantity: 50, Category: "Minuman"},
		{Name: "Kopi Hitam", Price: 6000, Quantity: 40, Category: "Minuman"},
		{Name: "Nasi Goreng", Price: 15000, Quantity: 20, Category: "Makanan"},
		{Name: "Mie Ayam", Price: 12000, Quantity: 25, Category: "Makanan"},
		{Name: "Kerupuk", Price: 2000, Quantity: 100, Category: "Camilan"},
	}

	for _, in := range items {
		if _, _, err := svc.Items.CreateOrMerge(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
