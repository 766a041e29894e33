package carousel

import (
	"sync"
	"time"

	"github.com/daroscoffee/storefront-service/internal/model"
)

type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// State is the externally visible snapshot of the carousel.
type State struct {
	Entries       []model.Event `json:"entries"`
	Index         int           `json:"index"`
	Direction     Direction     `json:"direction"`
	Transitioning bool          `json:"transitioning"`
}

// Carousel cycles through promotional banner entries. A transition
// lock makes overlapping advances no-ops: an autoplay tick racing a
// manual click moves the index exactly once.
type Carousel struct {
	mu            sync.Mutex
	entries       []model.Event
	index         int
	direction     Direction
	transitioning bool
	stopped       bool

	settleDelay      time.Duration
	autoplayInterval time.Duration
	settleTimer      *time.Timer
	autoplayStop     chan struct{}
}

func New(settleDelay, autoplayInterval time.Duration) *Carousel {
	return &Carousel{
		direction:        DirectionNext,
		settleDelay:      settleDelay,
		autoplayInterval: autoplayInterval,
	}
}

// SetEntries replaces the banner list. Autoplay is restarted whenever
// the entry count changes and stays suspended while there is at most
// one entry.
func (c *Carousel) SetEntries(entries []model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}

	sizeChanged := len(entries) != len(c.entries)
	c.entries = append([]model.Event{}, entries...)
	if c.index >= len(c.entries) {
		c.index = 0
	}

	if sizeChanged {
		c.restartAutoplayLocked()
	}
}

// Advance moves one step in the given direction. Returns false when
// the call was ignored (mid-transition, stopped, or no entries).
func (c *Carousel) Advance(dir Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.beginTransitionLocked() {
		return false
	}

	n := len(c.entries)
	if dir == DirectionPrev {
		c.index = (c.index - 1 + n) % n
		c.direction = DirectionPrev
	} else {
		c.index = (c.index + 1) % n
		c.direction = DirectionNext
	}
	return true
}

// GotoIndex jumps to a specific entry. Jumping to the current index is
// a no-op; direction is inferred from whether the target is ahead of
// or behind the current index.
func (c *Carousel) GotoIndex(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.entries) || i == c.index {
		return false
	}
	if !c.beginTransitionLocked() {
		return false
	}

	if i > c.index {
		c.direction = DirectionNext
	} else {
		c.direction = DirectionPrev
	}
	c.index = i
	return true
}

func (c *Carousel) beginTransitionLocked() bool {
	if c.stopped || c.transitioning || len(c.entries) == 0 {
		return false
	}

	c.transitioning = true
	c.settleTimer = time.AfterFunc(c.settleDelay, func() {
		c.mu.Lock()
		c.transitioning = false
		c.mu.Unlock()
	})
	return true
}

func (c *Carousel) restartAutoplayLocked() {
	if c.autoplayStop != nil {
		close(c.autoplayStop)
		c.autoplayStop = nil
	}
	if len(c.entries) <= 1 || c.autoplayInterval <= 0 {
		return
	}

	stop := make(chan struct{})
	c.autoplayStop = stop
	go func() {
		ticker := time.NewTicker(c.autoplayInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Advance(DirectionNext)
			case <-stop:
				return
			}
		}
	}()
}

func (c *Carousel) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Entries:       append([]model.Event{}, c.entries...),
		Index:         c.index,
		Direction:     c.direction,
		Transitioning: c.transitioning,
	}
}

// Stop tears the carousel down: autoplay and any pending settle timer
// are cancelled and all further calls are ignored.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.autoplayStop != nil {
		close(c.autoplayStop)
		c.autoplayStop = nil
	}
	if c.settleTimer != nil {
		c.settleTimer.Stop()
	}
	c.transitioning = false
}
