package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/techclub-services/common/db"
	"github.com/techclub-services/common/hash"
	"github.com/techclub-services/common/validator"
	"github.com/techclub-services/services/auth/models"
	"github.com/techclub-services/services/auth/repository"
)

// Admin accounts are provisioned out-of-band with this CLI; there is no
// runtime endpoint for it.
func main() {
	email := flag.String("email", "", "admin email address (required)")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "Administrator", "display name")
	force := flag.Bool("force", false, "replace an existing user with the same email")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !validator.IsValidEmail(*email) {
		log.Fatalf("invalid email address: %s", *email)
	}
	if !validator.IsValidPassword(*password) {
		log.Fatal("password must be at least 6 characters with a letter and a digit")
	}

	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer db.Close(ctx)

	userRepo := repository.NewUserRepository(database)

	existing, err := userRepo.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("lookup failed: %v", err)
	}
	if existing != nil {
		if !*force {
			log.Fatalf("user %s already exists (use -force to replace)", *email)
		}
		if err := userRepo.DeleteByEmail(ctx, *email); err != nil {
			log.Fatalf("failed to remove existing user: %v", err)
		}
		log.Printf("replaced existing user %s", *email)
	}

	hashed, err := hash.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &models.User{
		Name:     *name,
		Email:    *email,
		Password: hashed,
		Role:     "admin",
		IsAdmin:  true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("admin user created: %s (%s)\n", admin.Email, admin.ID.Hex())
}
