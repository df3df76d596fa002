// Package seeders provides a registry of seed functions.
//
// Define a seeder in any file in this package:
//
//	func init() {
//	    seeders.Register("catalog", SeedCatalog)
//	}
//
// Then run via CLI: warungpos seed
package seeders

import (
	"context"
	"fmt"
	"sync"

	"github.com/dwisetyadi/warungpos/app/services"
)

// Services bundles the application services a seeder may write through.
// Seeding goes through the services, not the raw repositories, so the
// merge-on-name and category-ensure rules hold for seeded data too.
type Services struct {
	Items      *services.ItemService
	Categories *services.CategoryService
	Receipts   *services.ReceiptService
}

// SeederFunc is the signature for a seed function.
type SeederFunc func(ctx context.Context, svc Services) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(ctx context.Context, svc Services) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	if len(current) == 0 {
		fmt.Println("  (no seeders registered)")
		return nil
	}

	for _, e := range current {
		fmt.Printf("  • Running seeder: %s … ", e.name)
		if err := e.fn(ctx, svc); err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		fmt.Println("done")
	}
	return nil
}
