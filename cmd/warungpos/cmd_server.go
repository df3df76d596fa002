package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dwisetyadi/warungpos/app/controllers"
	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/app/routes"
	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/internal/server"
	"github.com/dwisetyadi/warungpos/pkg/router"
)

// warungpos run — start the HTTP server.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the HTTP server (alias: serve)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// warungpos serve — alias kept for muscle memory.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// warungpos route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.RegisterAPI(r, wireControllers())

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		// Sort by path then method.
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

// wireControllers builds the controller set on the memory driver; route
// listing never touches a store.
func wireControllers() routes.Controllers {
	itemRepo := repositories.NewMemoryItemRepository()
	categoryRepo := repositories.NewMemoryCategoryRepository()
	receiptRepo := repositories.NewMemoryReceiptRepository()

	categorySvc := services.NewCategoryService(categoryRepo, itemRepo)
	itemSvc := services.NewItemService(itemRepo, categorySvc)

	return routes.Controllers{
		Items:      controllers.NewItemController(itemSvc),
		Categories: controllers.NewCategoryController(categorySvc),
		Receipts:   controllers.NewReceiptController(services.NewReceiptService(receiptRepo)),
		Auth:       controllers.NewAuthController(services.NewAuthService()),
	}
}
