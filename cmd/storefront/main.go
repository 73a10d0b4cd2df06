// Command storefront boots the bookstore client: config, storage, session
// bootstrap, then an optional one-shot view command printed to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"bookstorefront/internal/app"
	"bookstorefront/internal/config"
	"bookstorefront/internal/route"
	"bookstorefront/internal/util"
	"bookstorefront/internal/views"
)

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	configPath := flag.String("config", config.ConfigPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	util.InitLogger(cfg.LogLevel)

	a, err := app.New(app.Config{
		APIBaseURL:     cfg.APIBaseURL,
		AdminBaseURL:   cfg.AdminBaseURL,
		StorageBackend: cfg.StorageBackend,
		StoragePath:    cfg.StoragePath,
		RedisAddr:      cfg.RedisAddr,
		RedisPassword:  cfg.RedisPassword,
	})
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx := context.Background()
	a.Session.Bootstrap(ctx)
	a.Router.Navigate(route.PathRoot)

	slog.Info("storefront ready",
		"authenticated", a.Session.Authenticated(),
		"cartCount", a.Session.CartCount(),
		"route", a.Router.Current(),
	)

	if cmd := flag.Arg(0); cmd != "" {
		if err := runCommand(ctx, a, cmd); err != nil {
			slog.Error("command failed", "command", cmd, "err", err)
			os.Exit(1)
		}
	}
}

// runCommand loads one view and prints its state, mirroring what a page
// render would show.
func runCommand(ctx context.Context, a *app.App, cmd string) error {
	deps := a.ViewDeps()
	switch cmd {
	case "books":
		v := views.NewBooksView(deps)
		v.Load(ctx)
		for _, b := range v.Books() {
			fmt.Printf("%s\t%s by %s\t%.2f\n", b.InventoryID, b.Title, b.Author, b.Price)
		}
	case "cart":
		v := views.NewCartView(deps)
		v.Load(ctx)
		for _, item := range v.Items() {
			fmt.Printf("%s\t%s x%d\t%.2f\n", item.CartItemID, item.Title, item.Quantity, item.Subtotal())
		}
		fmt.Printf("total\t%.2f\n", v.Total())
	case "orders":
		v := views.NewOrdersView(deps)
		v.Load(ctx)
		for _, o := range v.Orders() {
			fmt.Printf("%s\t%s\t%.2f\t%s\n", o.OrderID, o.Status, o.TotalAmount, o.CreatedAt.Format("2006-01-02"))
		}
	case "wishlist":
		v := views.NewWishlistView(deps)
		v.Load(ctx)
		for _, item := range v.Items() {
			fmt.Printf("%s\t%s\t%.2f\n", item.InventoryID, item.Title, item.Price)
		}
	case "addresses":
		v := views.NewAddressesView(deps)
		v.Load(ctx)
		for _, addr := range v.Addresses() {
			marker := ""
			if addr.AddressID == v.DefaultID() {
				marker = "\t(default)"
			}
			fmt.Printf("%s\t%s, %s, %s %s%s\n", addr.AddressID, addr.AddressLine, addr.City, addr.State, addr.PostalCode, marker)
		}
	case "profile":
		v := views.NewProfileView(deps)
		v.Load(ctx)
		p := v.Profile()
		fmt.Printf("%s\t%s\t%s\n", p.Name, p.Email, p.Phone)
	default:
		return fmt.Errorf("unknown command %q (want books|cart|orders|wishlist|addresses|profile)", cmd)
	}
	return nil
}
