package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/ondrasimku/image-catalog-go/internal/domain"
	"github.com/ondrasimku/image-catalog-go/internal/repository"
	"github.com/ondrasimku/image-catalog-go/internal/service"
	"github.com/ondrasimku/image-catalog-go/internal/storage/local"
)

type fakeRepo struct {
	mu        sync.Mutex
	records   []domain.Image
	insertErr error
}

func (f *fakeRepo) Insert(ctx context.Context, img *domain.Image) (*domain.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	inserted := *img
	inserted.ID = bson.NewObjectID()
	f.records = append(f.records, inserted)
	return &inserted, nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]domain.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Image{}
	out = append(out, f.records...)
	return out, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*domain.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.ID.Hex() == id {
			found := rec
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, rec := range f.records {
		if rec.ID.Hex() == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newCatalog(t *testing.T, repo repository.ImageRepository) (service.CatalogService, string) {
	t.Helper()
	dir := t.TempDir()
	blobs, err := local.NewLocalStore(dir)
	require.NoError(t, err)
	return service.NewCatalogService(repo, blobs, zap.NewNop()), dir
}

func TestUploadRoundTrip(t *testing.T) {
	repo := &fakeRepo{}
	catalog, dir := newCatalog(t, repo)

	img, err := catalog.Upload(context.Background(), service.UploadInput{
		File:     strings.NewReader("png bytes"),
		Filename: "a.png",
		Title:    "T",
		Category: "C",
	})
	require.NoError(t, err)

	require.False(t, img.ID.IsZero())
	require.Equal(t, "T", img.Title)
	require.Equal(t, "C", img.Category)
	require.False(t, img.CreatedAt.IsZero())
	require.True(t, strings.HasPrefix(img.URL, "/uploads/"))

	// The url must point at a blob that actually exists.
	blobName := strings.TrimPrefix(img.URL, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, blobName))
	require.NoError(t, err)
	require.Equal(t, "png bytes", string(data))

	listed, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, img.ID, listed[0].ID)
}

func TestListReflectsStoreState(t *testing.T) {
	repo := &fakeRepo{}
	catalog, _ := newCatalog(t, repo)

	for i := 0; i < 5; i++ {
		_, err := catalog.Upload(context.Background(), service.UploadInput{
			File:     strings.NewReader("data"),
			Filename: "img.png",
		})
		require.NoError(t, err)
	}

	listed, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 5)
}

func TestUploadInsertFailureLeavesNoRecord(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("write concern error")}
	catalog, dir := newCatalog(t, repo)

	_, err := catalog.Upload(context.Background(), service.UploadInput{
		File:     strings.NewReader("data"),
		Filename: "a.png",
	})
	require.Error(t, err)

	listed, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, listed)

	// The blob is not rolled back: the orphan stays on disk.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestDeleteRemovesExactlyOneRecord(t *testing.T) {
	repo := &fakeRepo{}
	catalog, _ := newCatalog(t, repo)

	img, err := catalog.Upload(context.Background(), service.UploadInput{
		File:     strings.NewReader("data"),
		Filename: "a.png",
	})
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(context.Background(), img.ID.Hex()))

	listed, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, listed)

	err = catalog.Delete(context.Background(), img.ID.Hex())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteUnknownID(t *testing.T) {
	repo := &fakeRepo{}
	catalog, _ := newCatalog(t, repo)

	_, err := catalog.Upload(context.Background(), service.UploadInput{
		File:     strings.NewReader("data"),
		Filename: "a.png",
	})
	require.NoError(t, err)

	err = catalog.Delete(context.Background(), bson.NewObjectID().Hex())
	require.ErrorIs(t, err, repository.ErrNotFound)

	listed, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
}
