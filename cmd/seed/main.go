// seed puebla el catálogo y el libro de stock con los datos iniciales de la
// tienda, solo si las tablas están vacías (idempotente).
//
// Uso: go run ./cmd/seed
// Conecta a dos bases: la del catálogo (retail_db) y la de inventario
// (inventory_db). Ajustar con DB_HOST, DB_USER, etc.; DATABASE_URL aplica a
// ambas, útil solo cuando comparten servidor y base.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-api/internal/domain/entity"
	"github.com/jhoicas/retail-api/internal/infrastructure/postgres"
	"github.com/jhoicas/retail-api/pkg/config"
)

var initialProducts = []entity.Product{
	{ID: "1001", Name: "Apple Airpods Pro", Price: decimal.NewFromFloat(249.99), Description: "Earbuds with active noise cancellation", ImageURL: "https://lh3.googleusercontent.com/d/19YZR4K0ZPvVW4-xoz5HUjre-BChgCmv8"},
	{ID: "1002", Name: "Asus ROG Laptop", Price: decimal.NewFromFloat(1299.00), Description: "Unlock a next-level gaming experience with the ROG Strix G16.", ImageURL: "https://lh3.googleusercontent.com/d/1mKSz1BKglbEx2rPwwpmfxVLlcLmdwGO_"},
	{ID: "1003", Name: "Bose QuietComfort Headphones", Price: decimal.NewFromFloat(199.99), Description: "Take charge of your music and stride along to the beat.", ImageURL: "https://lh3.googleusercontent.com/d/1QJt8qblhGPk_PAm084TwC_kWrFcZq6Vo"},
	{ID: "1004", Name: "Canon EOS camera", Price: decimal.NewFromFloat(579.99), Description: "Up your photography game with the EOS Rebel T7.", ImageURL: "https://lh3.googleusercontent.com/d/1Vzo335bkCLsfpib-qhgRpbTZqi5N7dl_"},
	{ID: "1005", Name: "ATH-350TV Headphones Wired", Price: decimal.NewFromFloat(30.63), Description: "Audio-Technica ATH-350TV Headphones Wired for TV with Volume Controller Black", ImageURL: "https://lh3.googleusercontent.com/d/1Rt4z7-JV63AS7y82u12ID_GN5dPUeYvE"},
	{ID: "1006", Name: "JBL Soundbox", Price: decimal.NewFromFloat(165.95), Description: "Keep the mood alive for 24 hours on a single charge", ImageURL: "https://lh3.googleusercontent.com/d/1L4LL8Hlqg7tZETIvcJl8_J493w4MpsFf"},
	{ID: "1007", Name: "MACbook Air", Price: decimal.NewFromFloat(999.00), Description: "MacBook Air is the world's most popular laptop for a reason.", ImageURL: "https://lh3.googleusercontent.com/d/1dqWebaJQbnQ0XHRHbXYNunVhWFbMIYQ6"},
	{ID: "1008", Name: "SONY Playstation 5 Pro", Price: decimal.NewFromFloat(749.00), Description: "PS5® Pro is an all-digital console with no disc drive.", ImageURL: "https://lh3.googleusercontent.com/d/1r7a9hp_pPOL-SpvSXDPFQ1M50nCGdYho"},
	{ID: "1009", Name: "ELEPHAS Mini Projector", Price: decimal.NewFromFloat(66.49), Description: "Supports 1080P/4K resolution to provide clear visual effects.", ImageURL: "https://lh3.googleusercontent.com/d/1s02udwOq22sxrN5D0_LNvIZa1VXWrlv7"},
	{ID: "1010", Name: "Samsung S23", Price: decimal.NewFromFloat(499.99), Description: "Meet Galaxy S23, the phone takes you out of the everyday and into the epic.", ImageURL: "https://lh3.googleusercontent.com/d/1nXCkZm-70QqAm1Z2Q-mJ01lpV5xW2dXv"},
	{ID: "1011", Name: "SM Controller", Price: decimal.NewFromFloat(59.99), Description: "Gaming Controller with TMR sticks, Trigger Lock and Charging Dock", ImageURL: "https://lh3.googleusercontent.com/d/1oaW2q89znZIylLDcFuwkMzzSEh7WgMpv"},
	{ID: "1012", Name: "Sony Earbuds", Price: decimal.NewFromFloat(79.99), Description: "WF-C710N Truly Wireless Noise-Canceling Earbuds", ImageURL: "https://lh3.googleusercontent.com/d/1IrdEnW4GKDE6X2YzFw3KDg27ONgMcXun"},
	{ID: "1013", Name: "Venu Smartwatch", Price: decimal.NewFromFloat(349.99), Description: "Get in tune with your mind and body with Garmin Venu 3S smartwatch.", ImageURL: "https://lh3.googleusercontent.com/d/18Cm4JBhITC86JLuDaWgbWth75L8l6nWN"},
}

const initialStockLevel = 100

func main() {
	ctx := context.Background()

	if err := seedProducts(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "seed de catálogo: %v\n", err)
		os.Exit(1)
	}
	if err := seedInventory(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "seed de inventario: %v\n", err)
		os.Exit(1)
	}
}

func seedProducts(ctx context.Context) error {
	cfg, err := config.Load(config.Defaults{AppName: "seed", DBName: "retail_db"})
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.EnsureProductsSchema(ctx, pool); err != nil {
		return err
	}

	repo := postgres.NewProductRepository(pool)
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("catálogo ya poblado, se omite")
		return nil
	}
	for i := range initialProducts {
		if err := repo.Create(&initialProducts[i]); err != nil {
			return err
		}
	}
	fmt.Printf("catálogo poblado: %d productos\n", len(initialProducts))
	return nil
}

func seedInventory(ctx context.Context) error {
	cfg, err := config.Load(config.Defaults{AppName: "seed", DBName: "inventory_db"})
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.EnsureInventorySchema(ctx, pool); err != nil {
		return err
	}

	repo := postgres.NewStockRepository(pool)
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("inventario ya poblado, se omite")
		return nil
	}
	for _, p := range initialProducts {
		entry := entity.StockEntry{ProductID: p.ID, StockLevel: initialStockLevel}
		if err := repo.Insert(&entry); err != nil {
			return err
		}
	}
	fmt.Printf("inventario poblado: %d entradas con stock %d\n", len(initialProducts), initialStockLevel)
	return nil
}
