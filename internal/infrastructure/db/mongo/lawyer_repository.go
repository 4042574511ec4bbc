package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

const lawyersCollection = "lawyers"

// LawyerRepository implements ports.LawyerRepository on MongoDB.
type LawyerRepository struct {
	coll *mongo.Collection
}

func NewLawyerRepository(db *mongo.Database) *LawyerRepository {
	return &LawyerRepository{coll: db.Collection(lawyersCollection)}
}

type mongoLawyer struct {
	ID                primitive.ObjectID      `bson:"_id,omitempty"`
	FullName          string                  `bson:"full_name"`
	Email             string                  `bson:"email"`
	PasswordHash      string                  `bson:"password"`
	BarNumber         string                  `bson:"bar_number"`
	Specialization    string                  `bson:"specialization,omitempty"`
	PersonalInfo      domain.PersonalInfo     `bson:"personal_info"`
	ProfessionalInfo  domain.ProfessionalInfo `bson:"professional_info"`
	Qualifications    []domain.Qualification  `bson:"qualifications,omitempty"`
	Experience        []domain.Experience     `bson:"experience,omitempty"`
	IsActive          bool                    `bson:"is_active"`
	IsProfileComplete bool                    `bson:"is_profile_complete"`
	LoginAttempts     int                     `bson:"login_attempts"`
	LockUntil         *time.Time              `bson:"lock_until,omitempty"`
	LastLogin         *time.Time              `bson:"last_login,omitempty"`
	CreatedAt         time.Time               `bson:"created_at"`
	UpdatedAt         time.Time               `bson:"updated_at"`
}

func (ml *mongoLawyer) toDomain() *domain.Lawyer {
	return &domain.Lawyer{
		ID:                ml.ID.Hex(),
		FullName:          ml.FullName,
		Email:             ml.Email,
		PasswordHash:      ml.PasswordHash,
		BarNumber:         ml.BarNumber,
		Specialization:    ml.Specialization,
		PersonalInfo:      ml.PersonalInfo,
		ProfessionalInfo:  ml.ProfessionalInfo,
		Qualifications:    ml.Qualifications,
		Experience:        ml.Experience,
		IsActive:          ml.IsActive,
		IsProfileComplete: ml.IsProfileComplete,
		LoginAttempts:     ml.LoginAttempts,
		LockUntil:         ml.LockUntil,
		LastLogin:         ml.LastLogin,
		CreatedAt:         ml.CreatedAt,
		UpdatedAt:         ml.UpdatedAt,
	}
}

func (r *LawyerRepository) Create(ctx context.Context, lawyer *domain.Lawyer) (*domain.Lawyer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLawyer{
		FullName:          lawyer.FullName,
		Email:             lawyer.Email,
		PasswordHash:      lawyer.PasswordHash,
		BarNumber:         lawyer.BarNumber,
		Specialization:    lawyer.Specialization,
		PersonalInfo:      lawyer.PersonalInfo,
		ProfessionalInfo:  lawyer.ProfessionalInfo,
		Qualifications:    lawyer.Qualifications,
		Experience:        lawyer.Experience,
		IsActive:          lawyer.IsActive,
		IsProfileComplete: lawyer.IsProfileComplete,
		LoginAttempts:     lawyer.LoginAttempts,
		LockUntil:         lawyer.LockUntil,
		LastLogin:         lawyer.LastLogin,
		CreatedAt:         lawyer.CreatedAt,
		UpdatedAt:         lawyer.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert lawyer: %w", err)
	}

	created := *lawyer
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *LawyerRepository) FindByID(ctx context.Context, id string) (*domain.Lawyer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLawyerNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *LawyerRepository) FindByEmail(ctx context.Context, email string) (*domain.Lawyer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *LawyerRepository) FindByBarNumber(ctx context.Context, barNumber string) (*domain.Lawyer, error) {
	return r.findOne(ctx, bson.M{"bar_number": barNumber})
}

func (r *LawyerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Lawyer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoLawyer
	if err := r.coll.FindOne(ctx, filter).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLawyerNotFound
		}
		return nil, fmt.Errorf("find lawyer: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *LawyerRepository) ListActive(ctx context.Context) ([]*domain.Lawyer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list lawyers: %w", err)
	}
	return decodeLawyers(ctx, cur)
}

func (r *LawyerRepository) Search(ctx context.Context, filter ports.LawyerSearchFilter) ([]*domain.Lawyer, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_profile_complete": true}
	if filter.Query != "" {
		re := primitive.Regex{Pattern: filter.Query, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"full_name": re},
			bson.M{"personal_info.bio": re},
		}
	}
	if filter.PracticeArea != "" {
		query["professional_info.practice_areas"] = filter.PracticeArea
	}
	if filter.City != "" {
		query["personal_info.city"] = primitive.Regex{Pattern: filter.City, Options: "i"}
	}
	if filter.MinExperience > 0 {
		query["professional_info.years_of_experience"] = bson.M{"$gte": filter.MinExperience}
	}
	if filter.MaxRate > 0 {
		query["professional_info.hourly_rate"] = bson.M{"$lte": filter.MaxRate}
	}
	if filter.AvailableOnly {
		query["professional_info.is_available"] = true
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count lawyers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search lawyers: %w", err)
	}

	lawyers, err := decodeLawyers(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return lawyers, total, nil
}

// UpdateProfile writes profile fields only. Credential and lockout fields are
// deliberately excluded so a profile save cannot clobber a concurrent
// attempt-counter update.
func (r *LawyerRepository) UpdateProfile(ctx context.Context, lawyer *domain.Lawyer) error {
	oid, err := primitive.ObjectIDFromHex(lawyer.ID)
	if err != nil {
		return domain.ErrLawyerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"full_name":           lawyer.FullName,
		"specialization":      lawyer.Specialization,
		"personal_info":       lawyer.PersonalInfo,
		"professional_info":   lawyer.ProfessionalInfo,
		"qualifications":      lawyer.Qualifications,
		"experience":          lawyer.Experience,
		"is_profile_complete": lawyer.IsProfileComplete,
		"updated_at":          lawyer.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update lawyer profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLawyerNotFound
	}
	return nil
}

func (r *LawyerRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLawyerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"password": passwordHash, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLawyerNotFound
	}
	return nil
}

// IncrementLoginAttempts is an atomic increment-and-fetch: two concurrent
// failed logins each get a distinct counter value, so the lockout threshold
// cannot be undercounted by a lost update.
func (r *LawyerRepository) IncrementLoginAttempts(ctx context.Context, id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrLawyerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ml mongoLawyer
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"login_attempts": 1}},
		opts,
	).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrLawyerNotFound
		}
		return 0, fmt.Errorf("increment login attempts: %w", err)
	}
	return ml.LoginAttempts, nil
}

// SetLockUntil sets the lock expiry only while the stored counter is still at
// or above threshold, which makes the write idempotent under concurrent
// failures and a no-op if the account was reset in between.
func (r *LawyerRepository) SetLockUntil(ctx context.Context, id string, threshold int, until time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLawyerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "login_attempts": bson.M{"$gte": threshold}}
	_, err = r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"lock_until": until}})
	if err != nil {
		return fmt.Errorf("set lock: %w", err)
	}
	return nil
}

func (r *LawyerRepository) ResetLockout(ctx context.Context, id string, lastLogin time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLawyerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set":   bson.M{"login_attempts": 0, "last_login": lastLogin},
		"$unset": bson.M{"lock_until": ""},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("reset lockout: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLawyerNotFound
	}
	return nil
}

// EnsureIndexes creates the unique account indexes.
func (r *LawyerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bar_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeLawyers(ctx context.Context, cur *mongo.Cursor) ([]*domain.Lawyer, error) {
	defer cur.Close(ctx)

	var lawyers []*domain.Lawyer
	for cur.Next(ctx) {
		var ml mongoLawyer
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lawyer: %w", err)
		}
		lawyers = append(lawyers, ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate lawyers: %w", err)
	}
	return lawyers, nil
}
