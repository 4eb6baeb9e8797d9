// Package queue implements the exercise queue: a shuffled list of exercises,
// each repeated a fixed number of times, with a cursor and a loading flag.
package queue

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/game"
)

// State is the derived lifecycle state of a queue.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateReady
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateExhausted:
		return "exhausted"
	default:
		return "empty"
	}
}

// Item is one queue slot. Key is unique within a queue even when the same
// exercise repeats.
type Item struct {
	Exercise   domain.Exercise
	Key        string
	Repetition int
}

// Queue is an immutable value; every transition returns a new Queue.
type Queue struct {
	items    []Item
	position int
	loading  bool
}

// Populate builds a queue of each exercise repeated repetitions times, shuffled
// as a whole, positioned at the first item.
func Populate(exercises []domain.Exercise, repetitions int, rng game.Rand) (Queue, error) {
	var errs []domain.FieldError
	if len(exercises) == 0 {
		errs = append(errs, domain.FieldError{Field: "exercises", Message: "required"})
	}
	if repetitions < 1 {
		errs = append(errs, domain.FieldError{Field: "repetitions", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return Queue{}, domain.NewValidationErrors(errs)
	}

	items := make([]Item, 0, len(exercises)*repetitions)
	for i, ex := range exercises {
		base := strconv.Itoa(i)
		if ex.ID != uuid.Nil {
			base = ex.ID.String()
		}
		for rep := range repetitions {
			items = append(items, Item{
				Exercise:   ex,
				Key:        fmt.Sprintf("%s-r%d", base, rep),
				Repetition: rep,
			})
		}
	}

	return Queue{items: game.Shuffle(items, rng)}, nil
}

// State derives the lifecycle state. Loading takes precedence.
func (q Queue) State() State {
	switch {
	case q.loading:
		return StateLoading
	case len(q.items) == 0:
		return StateEmpty
	case q.position >= len(q.items):
		return StateExhausted
	default:
		return StateReady
	}
}

// Len is the total number of items.
func (q Queue) Len() int { return len(q.items) }

// Position is the zero-based cursor.
func (q Queue) Position() int { return q.position }

// Loading reports whether a replenishment is in flight.
func (q Queue) Loading() bool { return q.loading }

// Items returns a copy of the queue's items in play order.
func (q Queue) Items() []Item { return slices.Clone(q.items) }

// Current returns the item under the cursor.
func (q Queue) Current() (Item, error) {
	if q.position >= len(q.items) {
		return Item{}, domain.ErrOutOfRange
	}
	return q.items[q.position], nil
}

// Advance moves the cursor forward by one. Reaching len(items) makes the
// queue exhausted; advancing an exhausted or empty queue is an error.
func (q Queue) Advance() (Queue, error) {
	if q.position >= len(q.items) {
		return q, domain.ErrOutOfRange
	}
	q.position++
	return q, nil
}

// Retreat moves the cursor back by one, clamping at zero.
func (q Queue) Retreat() Queue {
	if q.position > 0 {
		q.position--
	}
	return q
}

// BeginLoading marks a replenishment as in flight.
func (q Queue) BeginLoading() Queue {
	q.loading = true
	return q
}

// EndLoading clears the loading flag without replacing items, used when a
// replenishment fails.
func (q Queue) EndLoading() Queue {
	q.loading = false
	return q
}
