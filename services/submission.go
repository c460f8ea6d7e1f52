package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrSoumissionEnCours is returned when a form of the same kind is already
// in flight; the caller keeps the first submission and drops the duplicate.
var ErrSoumissionEnCours = errors.New("une soumission est déjà en cours")

// Submitter sequences form submissions: a draft that passed validation
// waits out the configured latency, then commits to its store. While a key
// is in flight any further submission for that key is rejected, so a
// double-clicked submit can never append twice.
type Submitter struct {
	latency time.Duration
	log     *logrus.Entry

	mu       sync.Mutex
	inflight map[string]bool
}

func NewSubmitter(latency time.Duration) *Submitter {
	return &Submitter{
		latency:  latency,
		log:      logrus.WithField("component", "submitter"),
		inflight: map[string]bool{},
	}
}

// Submit runs commit after the latency elapses. Cancelling the context
// while waiting abandons the draft without committing, mirroring a closed
// dialog. The in-flight mark is released in every outcome.
func (s *Submitter) Submit(ctx context.Context, key string, commit func() error) error {
	s.mu.Lock()
	if s.inflight[key] {
		s.mu.Unlock()
		s.log.WithField("form", key).Warn("soumission dupliquée ignorée")
		return ErrSoumissionEnCours
	}
	s.inflight[key] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}()

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			s.log.WithField("form", key).Info("soumission abandonnée")
			return ctx.Err()
		case <-timer.C:
		}
	}

	if err := commit(); err != nil {
		return err
	}
	s.log.WithField("form", key).Debug("soumission validée")
	return nil
}
