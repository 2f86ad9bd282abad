package policyRepo

import (
	"context"

	"policygen/database"
	"policygen/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PolicyRepository defines methods for policy data access.
type PolicyRepository interface {
	// Save inserts a new policy document and returns its ID.
	Save(ctx context.Context, policy models.Policy) (string, error)
	// GetByID returns a policy by its ID.
	GetByID(ctx context.Context, id string) (*models.Policy, error)
	// GetByOwner fetches all policies of one owner, newest first.
	GetByOwner(ctx context.Context, ownerID string) ([]models.Policy, error)
	// Update replaces the mutable fields of an existing policy.
	Update(ctx context.Context, policy models.Policy) error
	// DeleteByID removes a policy by ID.
	DeleteByID(ctx context.Context, id string) error
	// CountByOwner returns the number of policies owned by one user.
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

type mongoPolicyRepo struct {
	coll *mongo.Collection
}

// NewMongoPolicyRepo returns a new PolicyRepository instance using MongoDB.
func NewMongoPolicyRepo() PolicyRepository {
	return &mongoPolicyRepo{
		coll: database.Database().Collection("policies"),
	}
}
