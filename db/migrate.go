package db

import (
	"fmt"
	"log"

	"github.com/jcastellanos/salon-reservas/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Location{},
		&models.Service{},
		&models.Reservation{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
