package policy

import (
	"context"
	"time"

	policyRepo "policygen/database/repository/policy"
	"policygen/models"
)

// PolicyService defines business logic for policy operations. All
// operations are scoped to the owner supplied by the caller; a policy that
// exists but belongs to someone else is indistinguishable from a missing
// one.
type PolicyService interface {
	// GeneratePolicy evaluates the answers, assembles the document and
	// persists the result as one logical step. Nothing is stored when
	// assembly fails.
	GeneratePolicy(ctx context.Context, ownerID string, answers models.QuestionnaireAnswers) (*models.Policy, error)
	// GetPolicy retrieves one policy owned by the given user.
	GetPolicy(ctx context.Context, ownerID, policyID string) (*models.Policy, error)
	// ListPolicies returns all policies of one owner, newest first.
	ListPolicies(ctx context.Context, ownerID string) ([]models.Policy, error)
	// UpdatePolicy regenerates an existing policy from a new answer set.
	UpdatePolicy(ctx context.Context, ownerID, policyID string, answers models.QuestionnaireAnswers) (*models.Policy, error)
	// DeletePolicy removes one policy owned by the given user.
	DeletePolicy(ctx context.Context, ownerID, policyID string) error
	// CountPolicies returns how many policies the given user owns.
	CountPolicies(ctx context.Context, ownerID string) (int64, error)
	// ExportPolicy renders one policy as a plain-text download artifact.
	ExportPolicy(ctx context.Context, ownerID, policyID string) (filename, text string, err error)
}

// AuditEnqueuer schedules a recomputation check for a stored policy.
// Implementations must tolerate being nil-checked; auditing is advisory.
type AuditEnqueuer interface {
	EnqueuePolicyAudit(policyID string) error
}

// DefaultPolicyService is the production implementation.
type DefaultPolicyService struct {
	Repo policyRepo.PolicyRepository
	// Now supplies the generation timestamp; injectable for tests.
	Now func() time.Time
	// Audit, when set, is notified after every generate/regenerate.
	Audit AuditEnqueuer
}

func (s *DefaultPolicyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
