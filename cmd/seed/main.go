package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jcastror/elfogon-backend/config"
	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

func main() {
	replace := flag.Bool("replace", false, "wipe the existing catalog before importing")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: go run cmd/seed/main.go [-replace] <demo|xlsx_file_path>")
	}
	source := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	count, err := categoryRepo.Count()
	if err != nil {
		log.Fatal("Failed to inspect catalog:", err)
	}
	if count > 0 {
		if !*replace {
			fmt.Println("Catalog is not empty; pass -replace to overwrite it. Nothing done.")
			return
		}
		fmt.Println("Wiping existing catalog...")
		if err := productRepo.DeleteAll(); err != nil {
			log.Fatal("Failed to delete products:", err)
		}
		if err := categoryRepo.DeleteAll(); err != nil {
			log.Fatal("Failed to delete categories:", err)
		}
	}

	var categories []model.Category
	var products []productRow

	if source == "demo" {
		categories, products = demoCatalog()
	} else {
		fmt.Printf("Reading XLSX file: %s\n", source)
		categories, products, err = readCatalogFromXLSX(source)
		if err != nil {
			log.Fatal("Failed to read XLSX:", err)
		}
	}

	categoryIDs := make(map[string]uint, len(categories))
	for i := range categories {
		if err := categoryRepo.Create(&categories[i]); err != nil {
			log.Fatal("Failed to create category:", err)
		}
		categoryIDs[categories[i].Name] = categories[i].ID
	}

	created := 0
	for _, row := range products {
		categoryID, ok := categoryIDs[row.category]
		if !ok {
			fmt.Printf("Skipping %q: unknown category %q\n", row.product.Name, row.category)
			continue
		}
		row.product.CategoryID = categoryID
		if err := productRepo.Create(&row.product); err != nil {
			log.Fatal("Failed to create product:", err)
		}
		created++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Categories: %d, products: %d\n", len(categories), created)
}

// productRow carries a product together with the category name it belongs
// to, resolved to an ID once categories exist.
type productRow struct {
	category string
	product  model.Product
}

func demoCatalog() ([]model.Category, []productRow) {
	categories := []model.Category{
		{Name: "Hamburguesas", Icon: "🍔", SortOrder: 1},
		{Name: "Bebidas", Icon: "🥤", SortOrder: 2},
		{Name: "Postres", Icon: "🍰", SortOrder: 3},
	}

	products := []productRow{
		{category: "Hamburguesas", product: model.Product{
			Name:        "Hamburguesa Clásica",
			Description: "Carne, queso, lechuga, tomate y salsa especial.",
			Price:       3500,
			ImageURL:    "/static/images/hamburguesa-clasica.webp",
			Active:      true,
			Extras: []model.ProductExtra{
				{Code: "queso_extra", Label: "Queso extra", Surcharge: 500},
				{Code: "tocino", Label: "Tocino", Surcharge: 700},
				{Code: "salsa_bbq", Label: "Salsa BBQ extra", Surcharge: 300},
			},
		}},
		{category: "Hamburguesas", product: model.Product{
			Name:        "Hamburguesa Doble Queso",
			Description: "Doble carne y doble queso.",
			Price:       4500,
			ImageURL:    "/static/images/hamburguesa-doble-queso.avif",
			Active:      true,
			Extras: []model.ProductExtra{
				{Code: "tocino", Label: "Tocino", Surcharge: 700},
				{Code: "pan_artesanal", Label: "Pan artesanal", Surcharge: 600},
			},
		}},
		{category: "Bebidas", product: model.Product{
			Name:        "Gaseosa 350ml",
			Description: "Refresco frío.",
			Price:       1200,
			ImageURL:    "/static/images/gaseosas.webp",
			Active:      true,
			Extras: []model.ProductExtra{
				{Code: "hielo_extra", Label: "Hielo extra", Surcharge: 0},
				{Code: "sin_azucar", Label: "Versión sin azúcar", Surcharge: 0},
			},
		}},
		{category: "Postres", product: model.Product{
			Name:        "Helado de vainilla",
			Description: "Con sirope de chocolate.",
			Price:       1800,
			ImageURL:    "/static/images/helado-vainilla.webp",
			Active:      true,
			Extras: []model.ProductExtra{
				{Code: "sirope_chocolate", Label: "Sirope de chocolate extra", Surcharge: 300},
				{Code: "nueces", Label: "Nueces", Surcharge: 400},
			},
		}},
	}

	return categories, products
}

// readCatalogFromXLSX expects a Categories sheet (Name, Description, Icon,
// SortOrder) and a Products sheet (Category, Name, Description, Price,
// ImageURL, Extras). Extras are encoded "code:label:surcharge" entries
// separated by "|". The first row of each sheet is a header.
func readCatalogFromXLSX(filePath string) ([]model.Category, []productRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	catRows, err := f.GetRows("Categories")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read Categories sheet: %w", err)
	}

	var categories []model.Category
	skipped := 0
	for i, row := range catRows {
		if i == 0 {
			continue
		}
		if len(row) < 1 || strings.TrimSpace(row[0]) == "" {
			skipped++
			continue
		}
		category := model.Category{Name: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			category.Description = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			category.Icon = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			category.SortOrder, _ = strconv.Atoi(strings.TrimSpace(row[3]))
		}
		categories = append(categories, category)
	}

	prodRows, err := f.GetRows("Products")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read Products sheet: %w", err)
	}

	var products []productRow
	for i, row := range prodRows {
		if i == 0 {
			continue
		}
		if len(row) < 4 {
			skipped++
			continue
		}

		categoryName := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if categoryName == "" || name == "" {
			skipped++
			continue
		}

		price, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
		if err != nil || price < 0 {
			skipped++
			continue
		}

		product := model.Product{
			Name:        name,
			Description: strings.TrimSpace(row[2]),
			Price:       price,
			Active:      true,
		}
		if len(row) > 4 {
			product.ImageURL = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			product.Extras = parseExtras(row[5])
		}

		products = append(products, productRow{category: categoryName, product: product})
	}

	if skipped > 0 {
		fmt.Printf("Skipped rows: %d\n", skipped)
	}

	return categories, products, nil
}

func parseExtras(cell string) []model.ProductExtra {
	var extras []model.ProductExtra
	seen := make(map[string]bool)

	for _, entry := range strings.Split(cell, "|") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) < 2 || parts[0] == "" {
			continue
		}

		code := strings.TrimSpace(parts[0])
		if seen[code] {
			continue
		}
		seen[code] = true

		extra := model.ProductExtra{
			Code:  code,
			Label: strings.TrimSpace(parts[1]),
		}
		if len(parts) == 3 {
			extra.Surcharge, _ = strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
		}
		extras = append(extras, extra)
	}

	return extras
}
