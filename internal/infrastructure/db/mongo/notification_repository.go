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
)

const notificationsCollection = "notifications"

// NotificationRepository implements ports.NotificationRepository on MongoDB.
type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection(notificationsCollection)}
}

type mongoNotification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	FromLawyerID   string             `bson:"from_lawyer_id,omitempty"`
	ToLawyerID     string             `bson:"to_lawyer_id"`
	FromLawyerName string             `bson:"from_lawyer_name,omitempty"`
	Message        string             `bson:"message"`
	Kind           string             `bson:"type"`
	Status         string             `bson:"status"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (mn *mongoNotification) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:             mn.ID.Hex(),
		FromLawyerID:   mn.FromLawyerID,
		ToLawyerID:     mn.ToLawyerID,
		FromLawyerName: mn.FromLawyerName,
		Message:        mn.Message,
		Kind:           domain.NotificationKind(mn.Kind),
		Status:         domain.NotificationStatus(mn.Status),
		CreatedAt:      mn.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoNotification{
		FromLawyerID:   n.FromLawyerID,
		ToLawyerID:     n.ToLawyerID,
		FromLawyerName: n.FromLawyerName,
		Message:        n.Message,
		Kind:           string(n.Kind),
		Status:         string(n.Status),
		CreatedAt:      n.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}

	created := *n
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotificationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNotification
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}
	return mn.toDomain(), nil
}

func (r *NotificationRepository) FindByRecipient(ctx context.Context, lawyerID string) ([]*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"to_lawyer_id": lawyerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return decodeNotifications(ctx, cur)
}

// UpdateStatus writes the decision with a filter on the current pending
// status, so only one of any concurrent responders can win. The loser and
// any later retry get ErrInvalidTransition.
func (r *NotificationRepository) UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotificationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "status": string(domain.StatusPending)}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update notification status: %w", err)
	}
	if res.MatchedCount == 0 {
		n, countErr := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if countErr != nil {
			return fmt.Errorf("update notification status: %w", countErr)
		}
		if n == 0 {
			return domain.ErrNotificationNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *NotificationRepository) FindAcceptedInvolving(ctx context.Context, lawyerID string) ([]*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"type":   bson.M{"$in": bson.A{string(domain.KindConnectionRequest), string(domain.KindReminder)}},
		"status": string(domain.StatusAccepted),
		"$or": bson.A{
			bson.M{"from_lawyer_id": lawyerID},
			bson.M{"to_lawyer_id": lawyerID},
		},
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	return decodeNotifications(ctx, cur)
}

// EnsureIndexes creates the recipient inbox index.
func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "to_lawyer_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "type", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeNotifications(ctx context.Context, cur *mongo.Cursor) ([]*domain.Notification, error) {
	defer cur.Close(ctx)

	var notifications []*domain.Notification
	for cur.Next(ctx) {
		var mn mongoNotification
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		notifications = append(notifications, mn.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}
