package ratings

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"voyago/db"
	"voyago/models"
)

// PreferredThreshold is the minimum score for a destination to count as
// preferred.
const PreferredThreshold = 5

// Log is the append-only rating log. Events are never mutated or removed;
// the preferred view is recomputed on demand, never cached.
type Log struct {
	mu     sync.Mutex
	events []models.RatingEvent
	seq    int64
}

func NewLog() *Log {
	return &Log{}
}

// Record appends an event to the log. It never rejects and never
// deduplicates; a destination may be rated any number of times.
func (l *Log) Record(event models.RatingEvent) models.RatingEvent {
	l.mu.Lock()
	l.seq++
	event.Seq = l.seq
	event.Timestamp = time.Now().UTC()
	l.events = append(l.events, event)
	l.mu.Unlock()

	go persist(event)
	return event
}

// All returns a copy of the full log in insertion order.
func (l *Log) All() []models.RatingEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.RatingEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Preferred returns the rated destinations with score >= PreferredThreshold,
// sorted descending by score. Equal scores keep their recording order.
func (l *Log) Preferred() []models.RatingEvent {
	return l.view(func(score int) bool { return score >= PreferredThreshold })
}

// Unpreferred returns the below-threshold events in insertion order.
func (l *Log) Unpreferred() []models.RatingEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.RatingEvent, 0)
	for _, e := range l.events {
		if e.Rating < PreferredThreshold {
			out = append(out, e)
		}
	}
	return out
}

func (l *Log) view(keep func(int) bool) []models.RatingEvent {
	l.mu.Lock()
	out := make([]models.RatingEvent, 0)
	for _, e := range l.events {
		if keep(e.Rating) {
			out = append(out, e)
		}
	}
	l.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}

// Clear wipes the log. Testing aid; the planning flow never calls it.
func (l *Log) Clear() {
	l.mu.Lock()
	l.events = nil
	l.seq = 0
	l.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := db.RatingsCollection.DeleteMany(ctx, map[string]any{}); err != nil {
			log.Println("ratings clear error:", err)
		}
	}()
}

func persist(event models.RatingEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.RatingsCollection.InsertOne(ctx, event); err != nil {
		log.Println("rating persist error:", err)
	}
}
