package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/searchbridge/search-proxy/internal/domain/model"
)

// SearchLogsRepositoryInterface defines log persistence operations.
type SearchLogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.SearchLogEntry) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*model.SearchLogEntry, error)
}

// SearchLogsRepository persists search audit logs to MongoDB.
type SearchLogsRepository struct {
	collection *mongo.Collection
}

// NewSearchLogsRepository creates a new search logs repository.
func NewSearchLogsRepository(db *MongoDB) *SearchLogsRepository {
	return &SearchLogsRepository{
		collection: db.SearchLogs,
	}
}

// EnsureIndexes creates the TTL index used for log retention.
func (r *SearchLogsRepository) EnsureIndexes(ctx context.Context, retention time.Duration) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(retention.Seconds())),
	})
	return err
}

// Create inserts a new search log entry.
func (r *SearchLogsRepository) Create(ctx context.Context, entry *model.SearchLogEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// LogQueryOptions provides filters for querying search logs.
type LogQueryOptions struct {
	RequestID string
	Outcome   string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int64
}

// Query returns search log entries matching the filters, newest first.
func (r *SearchLogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*model.SearchLogEntry, error) {
	filter := bson.M{}

	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Outcome != "" {
		filter["outcome"] = opts.Outcome
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var entries []*model.SearchLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

var _ SearchLogsRepositoryInterface = (*SearchLogsRepository)(nil)
