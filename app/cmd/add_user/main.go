package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ShawnMa123/wio-calculator/app/config"
	"github.com/ShawnMa123/wio-calculator/app/database"
)

func main() {
	username := flag.String("username", "admin", "account username")
	password := flag.String("password", "", "new password (required)")
	flag.Parse()

	if *password == "" {
		fmt.Println("Usage: add_user -username admin -password <new-password>")
		os.Exit(1)
	}

	config.Load()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	if err := database.ResetUserPassword(db, *username, *password); err != nil {
		fmt.Printf("Error setting password: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Password set for account %q\n", *username)
}
