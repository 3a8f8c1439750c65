package wheel

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/logger"

	"wheel/internal/models"
	"wheel/internal/store"
)

// DefaultSpinDuration is the animation window between drawing a rotation
// and resolving the winner.
const DefaultSpinDuration = 3 * time.Second

// Spinner runs complete spins against a store: it gates concurrent spins,
// draws a random rotation, waits out the animation window, resolves the
// winner and records the outcome. Rotation accumulates across spins so the
// wheel keeps turning forward; it is never reset.
type Spinner struct {
	store *store.MemStore

	mu       sync.Mutex
	spinning bool
	rotation float64

	rng          *rand.Rand
	duration     time.Duration
	removeWinner bool
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithDuration sets the animation window length.
func WithDuration(d time.Duration) Option {
	return func(s *Spinner) {
		s.duration = d
	}
}

// WithRemoveWinner controls whether the winning item is removed from the
// wheel after a spin.
func WithRemoveWinner(remove bool) Option {
	return func(s *Spinner) {
		s.removeWinner = remove
	}
}

// WithRand sets the random source used for draws.
func WithRand(r *rand.Rand) Option {
	return func(s *Spinner) {
		s.rng = r
	}
}

// NewSpinner creates a Spinner bound to st. Defaults: 3 second animation
// window, winner removal enabled, time-seeded randomness.
func NewSpinner(st *store.MemStore, opts ...Option) *Spinner {
	s := &Spinner{
		store:        st,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		duration:     DefaultSpinDuration,
		removeWinner: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of one completed spin.
type Result struct {
	Rotation float64            `json:"rotation"`
	Winner   models.WheelItem   `json:"winner"`
	Record   models.SpinHistory `json:"record"`
}

// Spin runs one full spin. It returns ErrSpinInProgress while a previous
// spin's animation window is open and ErrEmptyWheel when there are no
// items. The item list is captured at draw time, so items added during the
// animation window do not shift the outcome. The animation window always
// runs to completion once started; there is no cancel.
func (s *Spinner) Spin() (Result, error) {
	s.mu.Lock()
	if s.spinning {
		s.mu.Unlock()
		return Result{}, ErrSpinInProgress
	}
	items := s.store.ListItems()
	if len(items) == 0 {
		s.mu.Unlock()
		return Result{}, ErrEmptyWheel
	}
	spins, finalAngle := Draw(s.rng)
	s.rotation += spins*360 + finalAngle
	total := s.rotation
	s.spinning = true
	s.mu.Unlock()

	time.Sleep(s.duration)

	defer func() {
		s.mu.Lock()
		s.spinning = false
		s.mu.Unlock()
	}()

	winner := items[ResolveWinnerIndex(total, len(items))]
	record := s.store.CreateSpinRecord(winner.Text, time.Now().UTC().Format(time.RFC3339))
	if s.removeWinner {
		s.store.DeleteItem(winner.ID)
	}
	logger.Infof("spin resolved: winner=%q rotation=%.2f", winner.Text, total)

	return Result{Rotation: total, Winner: winner, Record: record}, nil
}
