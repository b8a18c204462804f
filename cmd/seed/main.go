package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/mockdata"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/utils"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema, loads the demo catalog and optionally creates
// an admin account.
// Usage: go run cmd/seed/main.go [--admin]
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("NORVILA STORE - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.DetectMockMode()
	config.InitDB()
	if config.DB == nil {
		log.Fatal("❌ No database configured; set SUPABASE_URL / SUPABASE_KEY first")
	}
	log.Println("✓ Connected to database")

	migrate(config.DB)
	seedCatalog(config.DB)

	if len(os.Args) > 1 && os.Args[1] == "--admin" {
		seedAdmin(config.DB)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding complete")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/products")
	fmt.Println("3. Re-run with --admin to create an admin account")
	fmt.Println()
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.BlogPost{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	// Login events are written through pgx, outside GORM's models.
	if err := db.Exec(utils.LoginEventsDDL).Error; err != nil {
		log.Fatalf("❌ Failed to create login_events table: %v", err)
	}
	log.Println("✓ login_events table ready")
}

// seedCatalog upserts the demo catalog so re-running the seeder is safe.
func seedCatalog(db *gorm.DB) {
	categories := mockdata.Categories()
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&categories).Error
	if err != nil {
		log.Fatalf("❌ Failed to seed categories: %v", err)
	}
	log.Printf("✓ Seeded %d categories", len(categories))

	products := mockdata.Products()
	for i := range products {
		// The association is implied by CategoryID; inserting the nested
		// struct again would conflict with the upsert above.
		products[i].Category = nil
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&products).Error
	if err != nil {
		log.Fatalf("❌ Failed to seed products: %v", err)
	}
	log.Printf("✓ Seeded %d products", len(products))

	posts := mockdata.BlogPosts()
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&posts).Error
	if err != nil {
		log.Fatalf("❌ Failed to seed blog posts: %v", err)
	}
	log.Printf("✓ Seeded %d blog posts", len(posts))
}

// seedAdmin creates or promotes an admin account from interactive input.
func seedAdmin(db *gorm.DB) {
	email, password, name := getAdminCredentials()

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if err := db.Model(&existing).Update("role", models.RoleAdmin).Error; err != nil {
			log.Fatalf("❌ Failed to promote user: %v", err)
		}
		fmt.Printf("✓ Existing user '%s' promoted to admin\n", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("❌ Database error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	admin := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Provider:     "password",
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to create admin: %v", err)
	}

	fmt.Println()
	fmt.Printf("✓ Admin created\n")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.Name)
}

// getAdminCredentials prompts for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Admin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if len(password) < 8 {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}
