package rating

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
	"marketplace/internal/modules/trust"
	"marketplace/internal/store"
)

type Service struct {
	store store.Store
	audit *audit.Recorder
}

func NewService(st store.Store, rec *audit.Recorder) *Service {
	return &Service{store: st, audit: rec}
}

// Submit appends the rating and recomputes the target's score as the
// one-decimal mean of every rating ever given to them. Repeat ratings
// from the same author are allowed and all count.
func (s *Service) Submit(ctx context.Context, req SubmitRatingRequest) (*SubmitRatingResult, error) {
	if req.Stars < 1 || req.Stars > 5 {
		return nil, ErrInvalidStars
	}

	var result SubmitRatingResult
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		target := doc.UserByID(req.TargetUserID)
		if target == nil {
			return ErrNotFound
		}

		doc.Ratings = append(doc.Ratings, domain.Rating{
			ID:           uuid.NewString(),
			TargetUserID: req.TargetUserID,
			ByUserID:     req.ByUserID,
			Stars:        req.Stars,
			Comment:      req.Comment,
			At:           time.Now().UTC(),
		})

		all := doc.RatingsForUser(req.TargetUserID)
		sum := 0
		for _, r := range all {
			sum += r.Stars
		}
		target.Score = math.Round(float64(sum)/float64(len(all))*10) / 10
		target.Reviews = len(all)

		s.audit.Record(ctx, doc, domain.ActionRate, req.TargetUserID, req.ByUserID)

		result = SubmitRatingResult{
			Score:   target.Score,
			Reviews: target.Reviews,
			Trust:   trust.Score(target, doc.Bookings, doc.Orders),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
