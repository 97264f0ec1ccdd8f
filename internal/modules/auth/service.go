package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
	"marketplace/internal/modules/trust"
	"marketplace/internal/pkg/jwt"
	"marketplace/internal/store"
)

const defaultScore = 4.0

type Service struct {
	store  store.Store
	jwt    *jwt.Service
	audit  *audit.Recorder
	logger *zap.Logger
}

func NewService(st store.Store, tokens *jwt.Service, rec *audit.Recorder, logger *zap.Logger) *Service {
	return &Service{store: st, jwt: tokens, audit: rec, logger: logger}
}

// Login is a credential-less upsert: an existing user is matched by
// phone first, then by name, and signed in; otherwise a fresh profile
// is created on the spot.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	var result LoginResult
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		user := doc.UserByPhone(phone)
		if user == nil {
			user = doc.UserByName(name)
		}

		if user == nil {
			if name == "" {
				name = "Guest"
			}
			doc.Users = append(doc.Users, domain.User{
				ID:      uuid.NewString(),
				Name:    name,
				Phone:   phone,
				Score:   defaultScore,
				Reviews: 0,
				Role:    domain.RoleUser,
			})
			user = &doc.Users[len(doc.Users)-1]
			s.audit.Record(ctx, doc, domain.ActionSignup, user.Name, user.ID)
			result.New = true
		} else {
			s.audit.Record(ctx, doc, domain.ActionLogin, user.Name, user.ID)
		}

		result.User = *user
		result.Trust = trust.Score(user, doc.Bookings, doc.Orders)
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(result.User.ID, string(result.User.Role))
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, err
	}
	result.Token = token
	return &result, nil
}
