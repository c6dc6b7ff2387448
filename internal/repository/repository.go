package repository

import (
	"context"
	"errors"

	"github.com/ondrasimku/image-catalog-go/internal/domain"
)

// ErrNotFound is returned when an identifier does not resolve to a stored
// record. Identifiers that cannot be valid ObjectIDs are reported the same
// way, since they cannot match anything.
var ErrNotFound = errors.New("image not found")

type ImageRepository interface {
	Insert(ctx context.Context, img *domain.Image) (*domain.Image, error)
	FindAll(ctx context.Context) ([]domain.Image, error)
	FindByID(ctx context.Context, id string) (*domain.Image, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
