package policy

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"policygen/database/storage"
	"policygen/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPolicyRepo is an in-memory PolicyRepository for service tests.
type memoryPolicyRepo struct {
	mu       sync.Mutex
	policies map[string]models.Policy
	seq      int
}

func newMemoryPolicyRepo() *memoryPolicyRepo {
	return &memoryPolicyRepo{policies: make(map[string]models.Policy)}
}

func (r *memoryPolicyRepo) Save(_ context.Context, policy models.Policy) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if policy.ID == "" {
		policy.ID = uuid.New().String()
	}
	r.seq++
	policy.CreatedAt = time.Unix(int64(r.seq), 0)
	policy.UpdatedAt = policy.CreatedAt
	r.policies[policy.ID] = policy
	return policy.ID, nil
}

func (r *memoryPolicyRepo) GetByID(_ context.Context, id string) (*models.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.policies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (r *memoryPolicyRepo) GetByOwner(_ context.Context, ownerID string) ([]models.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Policy
	for _, p := range r.policies {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryPolicyRepo) Update(_ context.Context, policy models.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.policies[policy.ID]
	if !ok {
		return storage.ErrNotFound
	}
	policy.CreatedAt = existing.CreatedAt
	policy.UpdatedAt = time.Now()
	r.policies[policy.ID] = policy
	return nil
}

func (r *memoryPolicyRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.policies[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.policies, id)
	return nil
}

func (r *memoryPolicyRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.policies {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *memoryPolicyRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.policies)
}

type recordingEnqueuer struct {
	ids []string
}

func (e *recordingEnqueuer) EnqueuePolicyAudit(policyID string) error {
	e.ids = append(e.ids, policyID)
	return nil
}

func newTestService(repo *memoryPolicyRepo, audit AuditEnqueuer) *DefaultPolicyService {
	return &DefaultPolicyService{
		Repo:  repo,
		Now:   func() time.Time { return fixedTime },
		Audit: audit,
	}
}

func TestGeneratePolicyPersistsDerivedFields(t *testing.T) {
	repo := newMemoryPolicyRepo()
	audit := &recordingEnqueuer{}
	svc := newTestService(repo, audit)

	created, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.True(t, created.GDPRCompliant)
	assert.Equal(t, 55, created.VulnerabilityScore)
	assert.Contains(t, created.DocumentText, "# Privacy Policy for Acme")
	assert.Equal(t, []string{created.ID}, audit.ids)
}

func TestGeneratePolicyStoresNothingOnAssemblyFailure(t *testing.T) {
	repo := newMemoryPolicyRepo()
	svc := newTestService(repo, nil)

	answers := acmeAnswers()
	answers.WebsiteName = ""

	_, err := svc.GeneratePolicy(context.Background(), "owner-1", answers)

	var missing MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "website_name", missing.Field)
	assert.Equal(t, 0, repo.len())
}

func TestStoredFlagsAreRecomputable(t *testing.T) {
	repo := newMemoryPolicyRepo()
	svc := newTestService(repo, nil)

	created, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)

	// The audit worker's check: evaluating the stored answers must match
	// the stored verdict exactly.
	assert.Equal(t, created.Compliance(), Evaluate(created.Answers))
}

func TestGetPolicyScopedToOwner(t *testing.T) {
	repo := newMemoryPolicyRepo()
	svc := newTestService(repo, nil)

	created, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)

	_, err = svc.GetPolicy(context.Background(), "owner-2", created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := svc.GetPolicy(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestListPoliciesNewestFirst(t *testing.T) {
	repo := newMemoryPolicyRepo()
	svc := newTestService(repo, nil)

	first, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)
	second, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)

	policies, err := svc.ListPolicies(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, second.ID, policies[0].ID)
	assert.Equal(t, first.ID, policies[1].ID)
}

func TestUpdatePolicyRegenerates(t *testing.T) {
	repo := newMemoryPolicyRepo()
	svc := newTestService(repo, nil)

	created, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)

	answers := acmeAnswers()
	answers.DataRetention = models.RetentionIndefinite

	updated, err := svc.UpdatePolicy(context.Background(), "owner-1", created.ID, answers)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.GDPRCompliant)
	assert.Contains(t, updated.DocumentText, complianceGDPRNo)
}

func TestUpdatePolicyRejectsNonOwner(t *testing.T) {
	repo := newMemoryPolicyRepo()
	svc := newTestService(repo, nil)

	created, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)

	_, err = svc.UpdatePolicy(context.Background(), "owner-2", created.ID, acmeAnswers())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeletePolicyScopedToOwner(t *testing.T) {
	repo := newMemoryPolicyRepo()
	svc := newTestService(repo, nil)

	created, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)

	err = svc.DeletePolicy(context.Background(), "owner-2", created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, 1, repo.len())

	require.NoError(t, svc.DeletePolicy(context.Background(), "owner-1", created.ID))
	assert.Equal(t, 0, repo.len())
}

func TestExportPolicyFilename(t *testing.T) {
	repo := newMemoryPolicyRepo()
	svc := newTestService(repo, nil)

	created, err := svc.GeneratePolicy(context.Background(), "owner-1", acmeAnswers())
	require.NoError(t, err)

	filename, text, err := svc.ExportPolicy(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)

	assert.Equal(t, "acme-privacy-policy.txt", filename)
	assert.NotContains(t, text, "#")
}
