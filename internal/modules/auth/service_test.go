package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
	jwtsvc "marketplace/internal/pkg/jwt"
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

func newTestService(doc domain.Document) (*Service, *memStore, *jwtsvc.Service) {
	st := &memStore{doc: doc}
	tokens := jwtsvc.New("test-secret", time.Hour)
	return NewService(st, tokens, audit.NewRecorder(nil), zap.NewNop()), st, tokens
}

func TestLogin_CreatesNewUser(t *testing.T) {
	svc, st, tokens := newTestService(domain.Document{})

	result, err := svc.Login(context.Background(), LoginRequest{Name: "Alice", Phone: "+81-1"})

	assert.NoError(t, err)
	assert.True(t, result.New)
	assert.NotEmpty(t, result.User.ID)
	assert.Equal(t, "Alice", result.User.Name)
	assert.Equal(t, 4.0, result.User.Score, "new users start at the default score")
	assert.Equal(t, domain.RoleUser, result.User.Role)
	assert.Equal(t, 66, result.Trust)

	claims, err := tokens.ValidateToken(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	assert.Len(t, st.doc.Users, 1)
	assert.Len(t, st.doc.Audit, 1)
	assert.Equal(t, domain.ActionSignup, st.doc.Audit[0].Action)
}

func TestLogin_MatchesByPhoneFirst(t *testing.T) {
	svc, st, _ := newTestService(domain.Document{
		Users: []domain.User{
			{ID: "u-phone", Name: "Old Name", Phone: "+81-1", Score: 4.5, Role: domain.RoleUser},
			{ID: "u-name", Name: "Alice", Score: 3.0, Role: domain.RoleUser},
		},
	})

	result, err := svc.Login(context.Background(), LoginRequest{Name: "Alice", Phone: "+81-1"})

	assert.NoError(t, err)
	assert.False(t, result.New)
	assert.Equal(t, "u-phone", result.User.ID, "phone match wins over name match")
	assert.Len(t, st.doc.Users, 2)
	assert.Equal(t, domain.ActionLogin, st.doc.Audit[0].Action)
}

func TestLogin_FallsBackToNameMatch(t *testing.T) {
	svc, st, _ := newTestService(domain.Document{
		Users: []domain.User{{ID: "u-1", Name: "Alice", Score: 4.0, Role: domain.RoleUser}},
	})

	result, err := svc.Login(context.Background(), LoginRequest{Name: "Alice"})

	assert.NoError(t, err)
	assert.False(t, result.New)
	assert.Equal(t, "u-1", result.User.ID)
	assert.Len(t, st.doc.Users, 1)
}

func TestLogin_EmptyNameBecomesGuest(t *testing.T) {
	svc, _, _ := newTestService(domain.Document{})

	result, err := svc.Login(context.Background(), LoginRequest{})

	assert.NoError(t, err)
	assert.True(t, result.New)
	assert.Equal(t, "Guest", result.User.Name)
}
