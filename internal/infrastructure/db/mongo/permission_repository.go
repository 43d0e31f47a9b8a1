package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ledgerline/practice-api/internal/api/metrics"
	"github.com/ledgerline/practice-api/internal/core/domain"
)

const permissionsCollection = "firm_user_permissions"

// MongoPermissionRepository stores one document per (user, firm) pair
// holding the full grant set.
type MongoPermissionRepository struct {
	coll *mongo.Collection
}

func NewPermissionRepository(db *mongo.Database) *MongoPermissionRepository {
	return &MongoPermissionRepository{coll: db.Collection(permissionsCollection)}
}

type mongoPermission struct {
	UserID    string   `bson:"user_id"`
	FirmID    string   `bson:"firm_id"`
	Modules   []string `bson:"modules"`
	UpdatedAt int64    `bson:"updated_at"`
}

func (r *MongoPermissionRepository) GetPermissions(ctx context.Context, userID, firmID string) ([]domain.ModuleKey, error) {
	start := time.Now()
	defer func() {
		metrics.PermissionFetchDuration.Observe(time.Since(start).Seconds())
	}()

	var mp mongoPermission
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "firm_id": firmID}).Decode(&mp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// No grants yet is a valid state, not an error.
			return []domain.ModuleKey{}, nil
		}
		return nil, fmt.Errorf("find permissions: %w", err)
	}

	modules := make([]domain.ModuleKey, 0, len(mp.Modules))
	for _, m := range mp.Modules {
		modules = append(modules, domain.ModuleKey(m))
	}
	return modules, nil
}

func (r *MongoPermissionRepository) SetPermissions(ctx context.Context, userID, firmID string, modules []domain.ModuleKey) error {
	raw := make([]string, 0, len(modules))
	for _, m := range modules {
		raw = append(raw, string(m))
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": userID, "firm_id": firmID},
		bson.M{"$set": mongoPermission{
			UserID:    userID,
			FirmID:    firmID,
			Modules:   raw,
			UpdatedAt: time.Now().UTC().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert permissions: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique (user_id, firm_id) index backing upserts.
func (r *MongoPermissionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "firm_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
