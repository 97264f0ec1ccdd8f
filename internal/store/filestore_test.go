package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/domain"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	assert.NoError(t, err)
	return fs
}

func TestFileStore_CreatesEmptyDocument(t *testing.T) {
	fs := newTestFileStore(t)

	err := fs.View(context.Background(), func(doc *domain.Document) error {
		assert.Empty(t, doc.Users)
		assert.Empty(t, doc.Bookings)
		return nil
	})
	assert.NoError(t, err)
}

func TestFileStore_UpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	fs, err := NewFileStore(path)
	assert.NoError(t, err)

	err = fs.Update(context.Background(), func(doc *domain.Document) error {
		doc.Users = append(doc.Users, domain.User{ID: "u-1", Name: "Alice"})
		return nil
	})
	assert.NoError(t, err)

	// A fresh store over the same file sees the committed write.
	reopened, err := NewFileStore(path)
	assert.NoError(t, err)
	err = reopened.View(context.Background(), func(doc *domain.Document) error {
		assert.Len(t, doc.Users, 1)
		assert.Equal(t, "Alice", doc.Users[0].Name)
		return nil
	})
	assert.NoError(t, err)
}

func TestFileStore_FailedUpdateDiscardsChanges(t *testing.T) {
	fs := newTestFileStore(t)
	boom := errors.New("boom")

	err := fs.Update(context.Background(), func(doc *domain.Document) error {
		doc.Users = append(doc.Users, domain.User{ID: "u-1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = fs.View(context.Background(), func(doc *domain.Document) error {
		assert.Empty(t, doc.Users, "a failed update must not be written")
		return nil
	})
	assert.NoError(t, err)
}

func TestFileStore_ConcurrentUpdatesSerialize(t *testing.T) {
	fs := newTestFileStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := fs.Update(context.Background(), func(doc *domain.Document) error {
				doc.AppendAudit(domain.AuditEntry{Action: "tick"})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	err := fs.View(context.Background(), func(doc *domain.Document) error {
		assert.Len(t, doc.Audit, writers, "no update may be lost")
		return nil
	})
	assert.NoError(t, err)
}
