package main

import (
	"fmt"
	"log"
	"time"

	"camply/internal/blockeddates"
	"camply/internal/pricing"
	"camply/internal/shared/config"
	"camply/internal/shared/database"
	"camply/internal/sites"
	"camply/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Camply Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"reservations",
		"blocked_dates",
		"seasons",
		"pricing_configs",
		"sites",
		"users",
	}

	for _, table := range tables {
		if err := s.db.GetPostgreSQL().Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			// Table may not exist yet on a fresh database
			log.Printf("Warning: could not truncate %s: %v", table, err)
		}
	}

	return nil
}

// SeedAll seeds users, sites, the rate table, and a few blocked dates
func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.seedSites(); err != nil {
		return fmt.Errorf("failed to seed sites: %w", err)
	}
	if err := s.seedPricing(); err != nil {
		return fmt.Errorf("failed to seed pricing: %w", err)
	}
	if err := s.seedBlockedDates(); err != nil {
		return fmt.Errorf("failed to seed blocked dates: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seedUsers := []users.User{
		{
			FirstName: "Camp",
			LastName:  "Admin",
			Email:     "admin@camply.dev",
			Password:  string(password),
			Role:      users.RoleAdmin,
		},
		{
			FirstName: "Jamie",
			LastName:  "Park",
			Email:     "jamie@example.com",
			Password:  string(password),
			Role:      users.RoleUser,
		},
		{
			FirstName: "Morgan",
			LastName:  "Lee",
			Email:     "morgan@example.com",
			Password:  string(password),
			Role:      users.RoleUser,
		},
	}

	for i := range seedUsers {
		if err := s.db.GetPostgreSQL().Create(&seedUsers[i]).Error; err != nil {
			return err
		}
	}

	fmt.Printf("   👤 Seeded %d users\n", len(seedUsers))
	return nil
}

func (s *Seeder) seedSites() error {
	seedSites := []sites.Site{
		{Name: "A-1", Description: "Riverside deck site", Zone: "A", BasePrice: 40000, Price: 50000, MaxOccupancy: 6, Active: true},
		{Name: "A-2", Description: "Riverside deck site", Zone: "A", BasePrice: 40000, Price: 50000, MaxOccupancy: 6, Active: true},
		{Name: "B-1", Description: "Forest site with shade", Zone: "B", BasePrice: 35000, Price: 45000, MaxOccupancy: 4, Active: true},
		{Name: "B-2", Description: "Forest site with shade", Zone: "B", BasePrice: 35000, Price: 45000, MaxOccupancy: 4, Active: true},
		{Name: "C-1", Description: "Large group site near the office", Zone: "C", BasePrice: 60000, Price: 70000, MaxOccupancy: 10, Active: true},
	}

	for i := range seedSites {
		if err := s.db.GetPostgreSQL().Create(&seedSites[i]).Error; err != nil {
			return err
		}
	}

	fmt.Printf("   🏕️  Seeded %d sites\n", len(seedSites))
	return nil
}

func (s *Seeder) seedPricing() error {
	cfg := pricing.PricingConfig{
		Weekday:          40000,
		Weekend:          50000,
		PeakWeekday:      55000,
		PeakWeekend:      65000,
		ExtraFamily:      10000,
		Visitor:          5000,
		LongStayDiscount: 5000,
		Active:           true,
		Seasons: []pricing.Season{
			{Name: "summer", StartMonth: 7, StartDay: 15, EndMonth: 8, EndDay: 24},
			{Name: "autumn-foliage", StartMonth: 10, StartDay: 20, EndMonth: 11, EndDay: 10},
		},
	}

	if err := s.db.GetPostgreSQL().Create(&cfg).Error; err != nil {
		return err
	}

	fmt.Printf("   💰 Seeded pricing config with %d peak seasons\n", len(cfg.Seasons))
	return nil
}

func (s *Seeder) seedBlockedDates() error {
	var site sites.Site
	if err := s.db.GetPostgreSQL().Where("name = ?", "C-1").First(&site).Error; err != nil {
		return err
	}

	maintenance := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	siteID := site.ID

	seedBlocked := []blockeddates.BlockedDate{
		{SiteID: &siteID, Date: maintenance, Memo: "deck repair"},
		{SiteID: nil, Date: maintenance.AddDate(0, 0, 14), Memo: "camp-wide festival"},
	}

	for i := range seedBlocked {
		if err := s.db.GetPostgreSQL().Create(&seedBlocked[i]).Error; err != nil {
			return err
		}
	}

	fmt.Printf("   🚫 Seeded %d blocked dates\n", len(seedBlocked))
	return nil
}
