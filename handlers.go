package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"obsqa/models"
	"obsqa/pkg/bank"
	"obsqa/pkg/match"
	"obsqa/pkg/ocr"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm/clause"
)

// server wires the matching engine, the session state and the frame
// watcher together for the HTTP handlers.
type server struct {
	state     *sessionState
	engine    *match.Engine
	extractor *match.KeywordExtractor
	watcher   *frameWatcher
}

func setupRoutes(r *gin.Engine, s *server) {
	r.POST("/login", loginHandler)
	r.POST("/match", s.matchHandler)
	r.GET("/get_results", s.getResultsHandler)
	r.GET("/export_results", s.exportResultsHandler)
	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.POST("/upload_question_bank", s.uploadQuestionBankHandler)
	authGroup.POST("/toggle_recording", s.toggleRecordingHandler)
	authGroup.POST("/clear_display", s.clearDisplayHandler)
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		username, _ := claims["username"].(string)
		c.Set("username", username)
		c.Next()
	}
}

func loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": tokenString})
}

// matchText runs the full pipeline on one OCR blob: segment, then match
// each question against the current bank snapshot.
func (s *server) matchText(text string) []QAPair {
	questions := match.SegmentQuestions(text)
	if len(questions) == 0 && utf8.RuneCountInString(strings.TrimSpace(text)) >= 5 {
		// No segmentable structure; treat the whole blob as one question.
		questions = []string{strings.TrimSpace(text)}
	}
	snapshot := s.state.Bank()
	pairs := make([]QAPair, 0, len(questions))
	for _, q := range questions {
		res := s.engine.Answer(q, snapshot)
		pair := QAPair{Question: q, Answer: answerNotFound}
		if res.Found {
			pair.Answer = res.Answer
			conf := res.Confidence()
			pair.Confidence = &conf
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// processFrame is the watcher callback: OCR one frame and publish results.
func (s *server) processFrame(path string) {
	text, err := ocr.ExtractTextFromImage(path)
	if err != nil {
		log.Printf("frame %s: %v", path, err)
		return
	}
	pairs := s.matchText(text)
	s.state.SetResults(text, pairs)
	log.Printf("frame %s: %d questions matched", path, len(pairs))
}

// matchHandler is the synchronous entry used with pre-extracted OCR text.
func (s *server) matchHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pairs := s.matchText(req.Text)
	s.state.SetResults(req.Text, pairs)
	c.JSON(http.StatusOK, gin.H{"qa_pairs": pairs, "question_count": len(pairs)})
}

func (s *server) uploadQuestionBankHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "file missing"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "only CSV files are accepted"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "open failed"})
		return
	}
	defer src.Close()
	entries, err := bank.LoadCSV(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	questions := make([]models.Question, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, models.Question{Question: e.Question, Answer: e.Answer})
	}
	// Existing questions are kept untouched so re-imports stay idempotent.
	tx := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&questions)
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": tx.Error.Error()})
		return
	}
	all, err := loadBankEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	s.state.SwapBank(match.NewBank(all, s.extractor))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  fmt.Sprintf("imported %d new questions (%d total)", tx.RowsAffected, len(all)),
		"imported": tx.RowsAffected,
		"total":    len(all),
	})
}

func (s *server) getResultsHandler(c *gin.Context) {
	ocrText, pairs, running, lastUpdate := s.state.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"ocr_text":    ocrText,
		"qa_pairs":    pairs,
		"is_running":  running,
		"last_update": lastUpdate.Format("2006-01-02 15:04:05"),
		"bank_size":   s.state.Bank().Len(),
	})
}

func (s *server) toggleRecordingHandler(c *gin.Context) {
	if s.watcher.Running() {
		s.watcher.Stop()
		s.state.SetRunning(false)
		c.JSON(http.StatusOK, gin.H{"message": "recording stopped", "status": "stopped"})
		return
	}
	if err := s.watcher.Start(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.state.SetRunning(true)
	c.JSON(http.StatusOK, gin.H{"message": "recording started", "status": "running"})
}

func (s *server) clearDisplayHandler(c *gin.Context) {
	s.state.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "display cleared"})
}

func (s *server) exportResultsHandler(c *gin.Context) {
	_, pairs, _, _ := s.state.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "答题结果导出\n%s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	for i, pair := range pairs {
		fmt.Fprintf(&b, "【题目 %d】\n", i+1)
		fmt.Fprintf(&b, "问题：%s\n", pair.Question)
		fmt.Fprintf(&b, "答案：%s\n", pair.Answer)
		if pair.Confidence != nil {
			fmt.Fprintf(&b, "匹配度：%d%%\n", *pair.Confidence)
		}
		b.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
	}
	c.Header("Content-Disposition", "attachment; filename=qa_results.txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}
