package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"obsqa/models"
	"obsqa/pkg/match"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run ./cmd/lookup <question text>")
		os.Exit(2)
	}
	query := strings.Join(os.Args[1:], " ")

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	var questions []models.Question
	if err := db.Order("id").Find(&questions).Error; err != nil {
		log.Fatalf("failed to load question bank: %v", err)
	}
	entries := make([]match.Entry, 0, len(questions))
	for _, q := range questions {
		entries = append(entries, match.Entry{Question: q.Question, Answer: q.Answer})
	}

	var tokenizer match.Tokenizer
	if t, err := match.NewGseTokenizer(); err != nil {
		log.Printf("gse dictionary unavailable, CJK keyword extraction disabled: %v", err)
	} else {
		tokenizer = t
	}
	extractor := match.NewKeywordExtractor(tokenizer)
	engine := match.NewEngine(extractor, match.DefaultThreshold)

	res := engine.Answer(query, match.NewBank(entries, extractor))
	if !res.Found {
		fmt.Println("未找到答案")
		os.Exit(1)
	}
	fmt.Printf("%s (匹配度 %d%%)\n", res.Answer, res.Confidence())
}
