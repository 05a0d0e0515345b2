// scripts/create_admin.go — seed the first admin account.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/IshaanAggrawal/InstituteManager/config"
	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@institute.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("admin user already exists:", email)
		os.Exit(0)
	}

	u := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created:", email)
	fmt.Println("remember to change the password after first login")
}
