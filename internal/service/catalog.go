package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ondrasimku/image-catalog-go/internal/domain"
	"github.com/ondrasimku/image-catalog-go/internal/repository"
	"github.com/ondrasimku/image-catalog-go/internal/storage"
)

// UploadInput carries the file stream and the free-form metadata fields of a
// single upload request. None of the text fields are required.
type UploadInput struct {
	File        io.Reader
	Filename    string
	Title       string
	Description string
	Category    string
}

type CatalogService interface {
	Upload(ctx context.Context, in UploadInput) (*domain.Image, error)
	List(ctx context.Context) ([]domain.Image, error)
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	repo  repository.ImageRepository
	blobs storage.BlobStore
	log   *zap.Logger
}

func NewCatalogService(repo repository.ImageRepository, blobs storage.BlobStore, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		blobs: blobs,
		log:   log,
	}
}

// Upload writes the blob first, then the metadata record. There is no
// transactional linkage between the two: if the record insert fails the blob
// stays behind as an orphan, which is logged and left to out-of-band cleanup.
func (s *catalogService) Upload(ctx context.Context, in UploadInput) (*domain.Image, error) {
	storedName, err := s.blobs.Save(ctx, in.File, in.Filename)
	if err != nil {
		return nil, err
	}

	img := &domain.Image{
		URL:         "/uploads/" + storedName,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, img)
	if err != nil {
		s.log.Warn("Image record insert failed after blob write, blob is orphaned",
			zap.String("stored_name", storedName),
			zap.Error(err))
		return nil, err
	}

	s.log.Info("Image uploaded",
		zap.String("id", created.ID.Hex()),
		zap.String("url", created.URL),
		zap.String("title", created.Title))

	return created, nil
}

func (s *catalogService) List(ctx context.Context) ([]domain.Image, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes the metadata record only; the backing blob is kept (the
// record's url goes dangling, same gap as orphaned upload blobs). A delete
// racing a delete on the same id may find the record already gone by the time
// DeleteOne runs, which still counts as success.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if _, err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.log.Info("Image deleted", zap.String("id", id))

	return nil
}
