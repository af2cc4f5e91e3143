// Package domtest holds test doubles for the dom package.
package domtest

import (
	"sort"
	"time"
)

type pending struct {
	at  time.Duration
	seq int
	fn  func()
}

// Scheduler is a manual clock. Callbacks only run from Advance, on the
// caller's goroutine.
type Scheduler struct {
	now   time.Duration
	seq   int
	queue []pending
}

func NewScheduler() *Scheduler { return &Scheduler{} }

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	s.seq++
	s.queue = append(s.queue, pending{at: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves the clock forward by d and runs every callback that came due,
// in due order.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		sort.SliceStable(s.queue, func(i, j int) bool {
			if s.queue[i].at == s.queue[j].at {
				return s.queue[i].seq < s.queue[j].seq
			}
			return s.queue[i].at < s.queue[j].at
		})
		if len(s.queue) == 0 || s.queue[0].at > target {
			break
		}
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.now = next.at
		next.fn()
	}
	s.now = target
}

func (s *Scheduler) Pending() int { return len(s.queue) }
