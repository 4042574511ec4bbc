package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

const casesCollection = "cases"

// CaseRepository implements ports.CaseRepository on MongoDB. Cases carry
// their own caller-assigned id field alongside the Mongo _id.
type CaseRepository struct {
	coll *mongo.Collection
}

func NewCaseRepository(db *mongo.Database) *CaseRepository {
	return &CaseRepository{coll: db.Collection(casesCollection)}
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCaseExists
		}
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (r *CaseRepository) FindAll(ctx context.Context) ([]*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cur.Close(ctx)

	var cases []*domain.Case
	for cur.Next(ctx) {
		var c domain.Case
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode case: %w", err)
		}
		cases = append(cases, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return cases, nil
}

// EnsureIndexes creates the unique case id index.
func (r *CaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
