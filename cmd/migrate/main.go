package main

import (
	"log"

	"github.com/ShawnMa123/wio-calculator/app/config"
	"github.com/ShawnMa123/wio-calculator/app/database"
)

func main() {
	log.Println("Starting standalone migration...")

	config.Load()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migration completed successfully!")
}
