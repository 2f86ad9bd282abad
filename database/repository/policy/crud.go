package policyRepo

import (
	"context"
	"fmt"
	"time"

	"policygen/database/storage"
	"policygen/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save inserts a new policy document and returns its ID.
func (r *mongoPolicyRepo) Save(ctx context.Context, policy models.Policy) (string, error) {
	if policy.ID == "" {
		policy.ID = uuid.New().String()
	}
	now := time.Now()
	policy.CreatedAt = now
	policy.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, policy)
	if err != nil {
		return "", fmt.Errorf("failed to save policy: %w", err)
	}
	return policy.ID, nil
}

// GetByID returns a policy by its ID.
func (r *mongoPolicyRepo) GetByID(ctx context.Context, id string) (*models.Policy, error) {
	var policy models.Policy
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&policy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch policy with id %s: %w", id, err)
	}
	return &policy, nil
}

// GetByOwner fetches all policies of one owner, newest first.
func (r *mongoPolicyRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Policy, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var policies []models.Policy
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, fmt.Errorf("failed to decode policies: %w", err)
	}
	return policies, nil
}

// Update replaces the regenerated fields of an existing policy document.
func (r *mongoPolicyRepo) Update(ctx context.Context, policy models.Policy) error {
	policy.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"website_name":        policy.WebsiteName,
		"website_url":         policy.WebsiteURL,
		"company_name":        policy.CompanyName,
		"contact_email":       policy.ContactEmail,
		"data_collected":      policy.DataCollected,
		"third_party_sharing": policy.ThirdPartySharing,
		"gdpr_compliant":      policy.GDPRCompliant,
		"ccpa_compliant":      policy.CCPACompliant,
		"lgpd_compliant":      policy.LGPDCompliant,
		"vulnerability_score": policy.VulnerabilityScore,
		"document_text":       policy.DocumentText,
		"answers":             policy.Answers,
		"updated_at":          policy.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": policy.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update policy with id %s: %w", policy.ID, err)
	}
	if result.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteByID removes a policy by ID.
func (r *mongoPolicyRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete policy with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CountByOwner returns the number of policies owned by one user.
func (r *mongoPolicyRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count policies for owner %s: %w", ownerID, err)
	}
	return count, nil
}
