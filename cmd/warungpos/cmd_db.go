package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/config"
	"github.com/dwisetyadi/warungpos/database/seeders"
	"github.com/dwisetyadi/warungpos/pkg/database"
)

// warungpos seed — run all registered seeders against the configured store.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		var (
			itemRepo     repositories.ItemRepository
			categoryRepo repositories.CategoryRepository
			receiptRepo  repositories.ReceiptRepository
		)
		switch config.StoreDriver() {
		case "mongo":
			client, db, err := database.Connect(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = database.Disconnect(client) }()

			itemRepo = repositories.NewMongoItemRepository(db)
			categoryRepo = repositories.NewMongoCategoryRepository(db)
			receiptRepo = repositories.NewMongoReceiptRepository(db)
		default:
			fmt.Println("STORE_DRIVER=memory: seeding an in-process store is a no-op after exit")
			itemRepo = repositories.NewMemoryItemRepository()
			categoryRepo = repositories.NewMemoryCategoryRepository()
			receiptRepo = repositories.NewMemoryReceiptRepository()
		}

		categorySvc := services.NewCategoryService(categoryRepo, itemRepo)
		svc := seeders.Services{
			Items:      services.NewItemService(itemRepo, categorySvc),
			Categories: categorySvc,
			Receipts:   services.NewReceiptService(receiptRepo),
		}

		fmt.Println("Seeding:")
		return seeders.RunAll(ctx, svc)
	},
}
