package rating

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
)

type memStore struct {
	mu  sync.Mutex
	doc domain.Document
}

func (s *memStore) View(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.doc)
}

func (s *memStore) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.doc)
}

func TestSubmitRating_RecomputesMean(t *testing.T) {
	st := &memStore{doc: domain.Document{
		Users: []domain.User{{ID: "u-1", Name: "Target", Score: 4.0}},
	}}
	svc := NewService(st, audit.NewRecorder(nil))

	for _, stars := range []int{5, 5} {
		_, err := svc.Submit(context.Background(), SubmitRatingRequest{
			TargetUserID: "u-1",
			ByUserID:     "u-2",
			Stars:        stars,
		})
		assert.NoError(t, err)
	}

	result, err := svc.Submit(context.Background(), SubmitRatingRequest{
		TargetUserID: "u-1",
		ByUserID:     "u-3",
		Stars:        4,
		Comment:      "solid",
	})

	assert.NoError(t, err)
	assert.Equal(t, 4.7, result.Score, "(5+5+4)/3 rounded to one decimal")
	assert.Equal(t, 3, result.Reviews)
	assert.Equal(t, 4.7, st.doc.Users[0].Score)
	assert.Equal(t, 3, st.doc.Users[0].Reviews)
	assert.Len(t, st.doc.Ratings, 3)
}

func TestSubmitRating_FirstRatingReplacesDefault(t *testing.T) {
	st := &memStore{doc: domain.Document{
		Users: []domain.User{{ID: "u-1", Score: 4.0}},
	}}
	svc := NewService(st, audit.NewRecorder(nil))

	result, err := svc.Submit(context.Background(), SubmitRatingRequest{
		TargetUserID: "u-1",
		ByUserID:     "u-2",
		Stars:        2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2.0, result.Score, "the seeded default score does not enter the mean")
	assert.Equal(t, 1, result.Reviews)
}

func TestSubmitRating_IncludesTrust(t *testing.T) {
	st := &memStore{doc: domain.Document{
		Users: []domain.User{{ID: "u-1", Score: 4.0}},
	}}
	svc := NewService(st, audit.NewRecorder(nil))

	result, err := svc.Submit(context.Background(), SubmitRatingRequest{
		TargetUserID: "u-1",
		ByUserID:     "u-2",
		Stars:        5,
	})

	assert.NoError(t, err)
	// score 5.0 -> 70 points, no completed transactions, base 10.
	assert.Equal(t, 80, result.Trust)
}

func TestSubmitRating_InvalidStars(t *testing.T) {
	st := &memStore{doc: domain.Document{Users: []domain.User{{ID: "u-1"}}}}
	svc := NewService(st, audit.NewRecorder(nil))

	for _, stars := range []int{0, -1, 6} {
		_, err := svc.Submit(context.Background(), SubmitRatingRequest{
			TargetUserID: "u-1",
			ByUserID:     "u-2",
			Stars:        stars,
		})
		assert.ErrorIs(t, err, ErrInvalidStars, "stars=%d", stars)
	}
	assert.Empty(t, st.doc.Ratings)
}

func TestSubmitRating_TargetNotFound(t *testing.T) {
	st := &memStore{}
	svc := NewService(st, audit.NewRecorder(nil))

	_, err := svc.Submit(context.Background(), SubmitRatingRequest{
		TargetUserID: "ghost",
		ByUserID:     "u-2",
		Stars:        5,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitRating_Audited(t *testing.T) {
	st := &memStore{doc: domain.Document{Users: []domain.User{{ID: "u-1"}}}}
	svc := NewService(st, audit.NewRecorder(nil))

	_, err := svc.Submit(context.Background(), SubmitRatingRequest{
		TargetUserID: "u-1",
		ByUserID:     "u-2",
		Stars:        5,
	})

	assert.NoError(t, err)
	assert.Len(t, st.doc.Audit, 1)
	assert.Equal(t, domain.ActionRate, st.doc.Audit[0].Action)
	assert.Equal(t, "u-1", st.doc.Audit[0].Detail)
	assert.Equal(t, "u-2", st.doc.Audit[0].By)
}
