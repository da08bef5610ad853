package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Omer-KISAKOL/site-builder/internal/config"
	"github.com/Omer-KISAKOL/site-builder/internal/db"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
	"github.com/Omer-KISAKOL/site-builder/internal/repository"
)

// createadmin creates an admin user, or promotes an existing user to
// admin when the email is already registered.
func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "password for a newly created admin (min 6 characters)")
	name := flag.String("name", "", "display name for a newly created admin")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer db.Close(gormDB)

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, *email)
	if err == nil {
		if existing.Role == model.RoleAdmin {
			log.Printf("%s is already an admin", existing.Email)
			return
		}
		role := model.RoleAdmin
		if _, err := users.Updates(ctx, existing.ID, map[string]interface{}{"role": role}); err != nil {
			log.Fatalf("promote user: %v", err)
		}
		log.Printf("%s promoted to admin", existing.Email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("lookup user: %v", err)
	}

	if len(*password) < 6 {
		log.Fatal("-password must be at least 6 characters for a new admin")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := &model.User{
		Email:        *email,
		PasswordHash: string(hashed),
		Name:         *name,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("admin %s created (id %s)", user.Email, user.ID)
}
