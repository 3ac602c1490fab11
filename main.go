package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"obsqa/pkg/match"

	"github.com/gin-gonic/gin"
)

var jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars
	loadDotEnv()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	// Support a lightweight migrate command: `./obsqa migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration and seeding completed")
		return
	}

	initDB()

	var tokenizer match.Tokenizer
	if gseTok, err := match.NewGseTokenizer(); err != nil {
		log.Printf("gse dictionary unavailable, CJK keyword extraction disabled: %v", err)
	} else {
		tokenizer = gseTok
	}
	extractor := match.NewKeywordExtractor(tokenizer)

	threshold := match.DefaultThreshold
	if v := os.Getenv("MATCH_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			threshold = f
		}
	}

	s := &server{
		state:     newSessionState(),
		engine:    match.NewEngine(extractor, threshold),
		extractor: extractor,
	}
	if entries, err := loadBankEntries(); err != nil {
		log.Printf("loading question bank: %v", err)
	} else {
		s.state.SwapBank(match.NewBank(entries, extractor))
		log.Printf("question bank loaded: %d entries", len(entries))
	}

	frameDir := os.Getenv("FRAME_DIR")
	if frameDir == "" {
		frameDir = "frames"
	}
	if err := os.MkdirAll(frameDir, 0755); err != nil {
		log.Printf("failed to create frame dir %s: %v", frameDir, err)
	}
	s.watcher = newFrameWatcher(frameDir, s.processFrame)

	r := gin.Default()

	setupRoutes(r, s)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":5000"
	}
	r.Run(addr)
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
