package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"obsqa/models"
	"obsqa/pkg/bank"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run ./cmd/import_bank <questions.csv>")
		os.Exit(2)
	}
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Question{}); err != nil {
		log.Printf("migration warning (questions): %v", err)
	}

	entries, err := bank.LoadCSVFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to load %s: %v", os.Args[1], err)
	}
	questions := make([]models.Question, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, models.Question{Question: e.Question, Answer: e.Answer})
	}
	// Re-imports leave existing questions untouched.
	tx := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&questions)
	if tx.Error != nil {
		log.Fatalf("import failed: %v", tx.Error)
	}
	fmt.Printf("imported %d new questions (%d rows in file)\n", tx.RowsAffected, len(entries))
}
