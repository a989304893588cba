// Command create_admin seeds an admin account so the panel is reachable on a
// fresh deployment. The allow-list lives in the admin_users table, so adding
// or removing admins later is a database change, not a redeploy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"tenthouse_backend/internal/database"
	"tenthouse_backend/internal/models"
	"tenthouse_backend/internal/repositories"
	"tenthouse_backend/pkg/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "admin account email (required)")
	password := flag.String("password", "", "admin account password (required)")
	fullName := flag.String("name", "", "optional full name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	_ = godotenv.Load()

	database.InitDB(
		utils.Getenv("DB_HOST", "localhost"),
		utils.Getenv("DB_PORT", "5432"),
		utils.Getenv("DB_USER", "tenthouse_user"),
		utils.Getenv("DB_PASSWORD", "tenthouse_password"),
		utils.Getenv("DB_NAME", "tenthouse_db"),
		utils.Getenv("DB_SSLMODE", "disable"),
		utils.Getenv("DB_SCHEMA_PATH", ""),
	)
	db := database.GetDB()

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.AdminUser{
		Email:    *email,
		FullName: utils.NewNullString(*fullName),
		IsAdmin:  true,
	}

	authRepo := repositories.NewAuthRepository(db)
	if _, err := authRepo.CreateAdmin(db, &admin, string(hashedPasswordBytes)); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			log.Fatalf("An account with email %s already exists", *email)
		}
		log.Fatalf("Failed to create admin account: %v", err)
	}

	fmt.Printf("Admin account created: %s\n", *email)
	fmt.Println("Please change the password after first login!")
}
