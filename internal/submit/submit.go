// Package submit abstracts the (simulated) backend calls behind form
// submissions. The routing layer only sees the Service interface, so tests
// can force either outcome deterministically instead of relying on the
// random failure rate the prototype bakes in.
package submit

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"tanyajaksa/internal/logging"
)

// ErrChatUnavailable is returned when the simulated chat-session creation
// fails. The UI surfaces it as a transient notification and stays on the
// form so the user can retry.
var ErrChatUnavailable = errors.New("tidak dapat memulai chat, coba lagi")

// AssistanceRequest carries the legal-assistance form fields.
type AssistanceRequest struct {
	Kind        string // "pendampingan" or "bantuan"
	Institution string
	PICName     string
	PICPosition string
	Address     string
	Phone       string
	Email       string
	Subject     string
	Category    string
	Description string
}

// Service decides the outcome of simulated submissions.
type Service interface {
	// SubmitChat attempts to create a chat session for the given topic.
	SubmitChat(topic, category string) error
	// SubmitAssistance files a legal-assistance application. The prototype
	// models no failure path for it.
	SubmitAssistance(req AssistanceRequest) error
}

// Simulated reproduces the prototype's behavior: a fixed processing delay
// and a small random failure rate on chat creation (~5%).
type Simulated struct {
	ChatDelay       time.Duration
	AssistanceDelay time.Duration
	FailureRate     float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated builds the production service. A zero seed falls back to the
// current time.
func NewSimulated(chatDelay, assistanceDelay time.Duration, failureRate float64, seed int64) *Simulated {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulated{
		ChatDelay:       chatDelay,
		AssistanceDelay: assistanceDelay,
		FailureRate:     failureRate,
		rng:             rand.New(rand.NewSource(seed)),
	}
}

func (s *Simulated) SubmitChat(topic, category string) error {
	time.Sleep(s.ChatDelay)

	s.mu.Lock()
	roll := s.rng.Float64()
	s.mu.Unlock()

	if roll < s.FailureRate {
		logging.Get(logging.CategorySubmit).Infof("simulated chat failure (topic=%q)", topic)
		return ErrChatUnavailable
	}
	return nil
}

func (s *Simulated) SubmitAssistance(req AssistanceRequest) error {
	time.Sleep(s.AssistanceDelay)
	logging.Get(logging.CategorySubmit).Infof("assistance filed (kind=%s subject=%q)", req.Kind, req.Subject)
	return nil
}

// Scripted returns canned outcomes in order and is intended for tests. Once
// the script is exhausted every call succeeds.
type Scripted struct {
	ChatOutcomes []error
	calls        int
}

func (s *Scripted) SubmitChat(topic, category string) error {
	if s.calls < len(s.ChatOutcomes) {
		err := s.ChatOutcomes[s.calls]
		s.calls++
		return err
	}
	return nil
}

func (s *Scripted) SubmitAssistance(req AssistanceRequest) error { return nil }
