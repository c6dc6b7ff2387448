package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/ondrasimku/image-catalog-go/internal/config"
	"github.com/ondrasimku/image-catalog-go/internal/domain"
)

const (
	serverSelectionTimeout = 5 * time.Second
	operationTimeout       = 45 * time.Second
)

type mongoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        *zap.Logger
}

// NewMongoRepository connects to MongoDB and returns a repository over the
// configured collection. The connection is verified with a ping before use.
func NewMongoRepository(ctx context.Context, cfg *config.MongoConfig, log *zap.Logger) (ImageRepository, func(context.Context) error, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetTimeout(operationTimeout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, serverSelectionTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("MongoDB connected",
		zap.String("database", cfg.Database),
		zap.String("collection", cfg.Collection))

	repo := &mongoRepository{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		log:        log,
	}

	return repo, client.Disconnect, nil
}

func (r *mongoRepository) Insert(ctx context.Context, img *domain.Image) (*domain.Image, error) {
	res, err := r.collection.InsertOne(ctx, img)
	if err != nil {
		r.log.Error("Failed to insert image record",
			zap.String("url", img.URL),
			zap.Error(err))
		return nil, fmt.Errorf("failed to insert image record: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	inserted := *img
	inserted.ID = oid

	return &inserted, nil
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]domain.Image, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		r.log.Error("Failed to query image records", zap.Error(err))
		return nil, fmt.Errorf("failed to query image records: %w", err)
	}

	images := []domain.Image{}
	if err := cursor.All(ctx, &images); err != nil {
		r.log.Error("Failed to decode image records", zap.Error(err))
		return nil, fmt.Errorf("failed to decode image records: %w", err)
	}

	return images, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*domain.Image, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var img domain.Image
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&img); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		r.log.Error("Failed to look up image record",
			zap.String("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to look up image record: %w", err)
	}

	return &img, nil
}

func (r *mongoRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Error("Failed to delete image record",
			zap.String("id", id),
			zap.Error(err))
		return 0, fmt.Errorf("failed to delete image record: %w", err)
	}

	return res.DeletedCount, nil
}
