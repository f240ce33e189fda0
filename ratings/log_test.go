package ratings

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAssignsSequence(t *testing.T) {
	l := NewLog()

	first := l.Record(models.RatingEvent{Destination: "Lisbon", Rating: 7})
	second := l.Record(models.RatingEvent{Destination: "Porto", Rating: 3})

	assert.Equal(t, int64(1), first.Seq)
	assert.Equal(t, int64(2), second.Seq)
	assert.False(t, first.Timestamp.IsZero())
}

func TestDuplicateRatingsBothKept(t *testing.T) {
	l := NewLog()
	l.Record(models.RatingEvent{Destination: "Lisbon", Rating: 6})
	l.Record(models.RatingEvent{Destination: "Lisbon", Rating: 9})

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, 6, all[0].Rating)
	assert.Equal(t, 9, all[1].Rating)
}

func TestPreferredThresholdAndOrder(t *testing.T) {
	l := NewLog()
	l.Record(models.RatingEvent{Destination: "Porto", Rating: 4})
	l.Record(models.RatingEvent{Destination: "Lisbon", Rating: 7})
	l.Record(models.RatingEvent{Destination: "Madeira", Rating: 5})
	l.Record(models.RatingEvent{Destination: "Faro", Rating: 7})

	preferred := l.Preferred()
	require.Len(t, preferred, 3)
	// Descending by score, ties keep recording order.
	assert.Equal(t, "Lisbon", preferred[0].Destination)
	assert.Equal(t, "Faro", preferred[1].Destination)
	assert.Equal(t, "Madeira", preferred[2].Destination)

	unpreferred := l.Unpreferred()
	require.Len(t, unpreferred, 1)
	assert.Equal(t, "Porto", unpreferred[0].Destination)
}

func TestPreferredRecomputedPerCall(t *testing.T) {
	l := NewLog()
	l.Record(models.RatingEvent{Destination: "Porto", Rating: 4})
	assert.Empty(t, l.Preferred())

	l.Record(models.RatingEvent{Destination: "Porto", Rating: 8})
	preferred := l.Preferred()
	require.Len(t, preferred, 1)
	assert.Equal(t, 8, preferred[0].Rating)
}
