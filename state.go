package main

import (
	"sync"
	"time"

	"obsqa/pkg/match"
)

// answerNotFound mirrors what the web UI displays for unmatched questions.
const answerNotFound = "未在题库中找到匹配答案"

// QAPair is one segmented question with its matched answer.
type QAPair struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Confidence *int   `json:"confidence,omitempty"`
}

// sessionState owns everything the web UI polls: the latest OCR text, the
// matched pairs, the recording flag and the current bank snapshot. Bank
// replacement is copy-on-write — the pointer is swapped whole under the
// lock so matching never sees a half-built bank.
type sessionState struct {
	mu         sync.RWMutex
	ocrText    string
	qaPairs    []QAPair
	running    bool
	lastUpdate time.Time
	bank       *match.Bank
}

func newSessionState() *sessionState {
	return &sessionState{lastUpdate: time.Now()}
}

func (s *sessionState) Bank() *match.Bank {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bank
}

func (s *sessionState) SwapBank(b *match.Bank) {
	s.mu.Lock()
	s.bank = b
	s.mu.Unlock()
}

func (s *sessionState) SetResults(ocrText string, pairs []QAPair) {
	s.mu.Lock()
	s.ocrText = ocrText
	s.qaPairs = pairs
	s.lastUpdate = time.Now()
	s.mu.Unlock()
}

func (s *sessionState) SetRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

func (s *sessionState) Clear() {
	s.mu.Lock()
	s.ocrText = ""
	s.qaPairs = nil
	s.lastUpdate = time.Now()
	s.mu.Unlock()
}

// Snapshot copies the displayable state out under the read lock.
func (s *sessionState) Snapshot() (ocrText string, pairs []QAPair, running bool, lastUpdate time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pairs = make([]QAPair, len(s.qaPairs))
	copy(pairs, s.qaPairs)
	return s.ocrText, pairs, s.running, s.lastUpdate
}
