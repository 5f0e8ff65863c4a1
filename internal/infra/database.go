package infra

import (
	"fmt"

	"stockledger/internal/config"
	"stockledger/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the store for the configured variant, postgres for
// the networked deployment or a sqlite file for the local one, and runs
// AutoMigrate. TranslateError is enabled so unique-key violations
// surface as gorm.ErrDuplicatedKey on both drivers.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	// Reduced mode collapses the schema to the products table only.
	tables := []interface{}{&model.Product{}}
	if !cfg.Reduced() {
		tables = append(tables, &model.Sale{}, &model.SaleItem{}, &model.Movement{})
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if cfg.SeedDemoData {
		if err := seedDemoProducts(db); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return db, nil
}

// seedDemoProducts populates an empty catalog with the demo set.
// Seeding is a direct insert and writes no movement records.
func seedDemoProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	str := func(s string) *string { return &s }
	demo := []model.Product{
		{Name: "Lenovo Notebook", Category: str("Electronics"), Quantity: 15, Price: decimal.NewFromFloat(3500.00), Description: str("Lenovo Ideapad 3, 8GB RAM, 256GB SSD"), Supplier: str("TechSupplier Ltd"), MinStock: 5},
		{Name: "Polo Shirt", Category: str("Apparel"), Quantity: 40, Price: decimal.NewFromFloat(79.90), Description: str("Cotton polo shirt, size M"), Supplier: str("FashionWear"), MinStock: 10},
		{Name: "Samsung A14 Smartphone", Category: str("Electronics"), Quantity: 8, Price: decimal.NewFromFloat(1200.00), Description: str("Smartphone with 128GB storage"), Supplier: str("MobileTech"), MinStock: 3},
		{Name: "Gamer Chair", Category: str("Furniture"), Quantity: 5, Price: decimal.NewFromFloat(899.99), Description: str("Ergonomic gamer chair, black and red"), Supplier: str("OfficePlus"), MinStock: 2},
		{Name: "JBL Headphones", Category: str("Electronics"), Quantity: 25, Price: decimal.NewFromFloat(199.90), Description: str("JBL Tune 510BT Bluetooth headphones"), Supplier: str("SoundStore"), MinStock: 5},
	}
	return db.Create(&demo).Error
}
