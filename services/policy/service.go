package policy

import (
	"context"
	"fmt"
	"strings"

	"policygen/database/storage"
	"policygen/models"
	"policygen/utils"

	"go.uber.org/zap"
)

// GeneratePolicy evaluates the answers, assembles the document and persists
// the resulting policy. Generation and persistence are one logical
// transaction from the caller's view: an assembly error aborts before any
// write.
func (s *DefaultPolicyService) GeneratePolicy(ctx context.Context, ownerID string, answers models.QuestionnaireAnswers) (*models.Policy, error) {
	result := Evaluate(answers)

	document, err := Assemble(answers, result, s.now())
	if err != nil {
		return nil, err
	}

	record := buildPolicy(ownerID, answers, result, document)
	id, err := s.Repo.Save(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to persist policy: %w", err)
	}

	saved, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved policy: %w", err)
	}

	s.enqueueAudit(saved.ID)
	return saved, nil
}

// GetPolicy retrieves one policy owned by the given user.
func (s *DefaultPolicyService) GetPolicy(ctx context.Context, ownerID, policyID string) (*models.Policy, error) {
	record, err := s.Repo.GetByID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if record.OwnerID != ownerID {
		return nil, storage.ErrNotFound
	}
	return record, nil
}

// ListPolicies returns all policies of one owner, newest first.
func (s *DefaultPolicyService) ListPolicies(ctx context.Context, ownerID string) ([]models.Policy, error) {
	return s.Repo.GetByOwner(ctx, ownerID)
}

// UpdatePolicy regenerates an existing policy in place from a new answer
// set. Only the owner may regenerate; the compliance flags, score and
// document text are all rederived from the new answers.
func (s *DefaultPolicyService) UpdatePolicy(ctx context.Context, ownerID, policyID string, answers models.QuestionnaireAnswers) (*models.Policy, error) {
	existing, err := s.GetPolicy(ctx, ownerID, policyID)
	if err != nil {
		return nil, err
	}

	result := Evaluate(answers)
	document, err := Assemble(answers, result, s.now())
	if err != nil {
		return nil, err
	}

	record := buildPolicy(ownerID, answers, result, document)
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}

	updated, err := s.Repo.GetByID(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated policy: %w", err)
	}

	s.enqueueAudit(updated.ID)
	return updated, nil
}

// DeletePolicy removes one policy owned by the given user.
func (s *DefaultPolicyService) DeletePolicy(ctx context.Context, ownerID, policyID string) error {
	if _, err := s.GetPolicy(ctx, ownerID, policyID); err != nil {
		return err
	}
	return s.Repo.DeleteByID(ctx, policyID)
}

// CountPolicies returns how many policies the given user owns.
func (s *DefaultPolicyService) CountPolicies(ctx context.Context, ownerID string) (int64, error) {
	return s.Repo.CountByOwner(ctx, ownerID)
}

// ExportPolicy renders one policy as a plain-text download artifact and a
// filename derived from the website name.
func (s *DefaultPolicyService) ExportPolicy(ctx context.Context, ownerID, policyID string) (string, string, error) {
	record, err := s.GetPolicy(ctx, ownerID, policyID)
	if err != nil {
		return "", "", err
	}
	return exportFilename(record.WebsiteName), ExportText(record.DocumentText), nil
}

func (s *DefaultPolicyService) enqueueAudit(policyID string) {
	if s.Audit == nil {
		return
	}
	if err := s.Audit.EnqueuePolicyAudit(policyID); err != nil {
		utils.GetLogger().Warn("failed to enqueue policy audit",
			zap.String("policyID", policyID), zap.Error(err))
	}
}

func buildPolicy(ownerID string, answers models.QuestionnaireAnswers, result models.ComplianceResult, document string) models.Policy {
	return models.Policy{
		OwnerID:            ownerID,
		WebsiteName:        answers.WebsiteName,
		WebsiteURL:         answers.WebsiteURL,
		CompanyName:        answers.CompanyName,
		ContactEmail:       answers.ContactEmail,
		DataCollected:      answers.DataCollected,
		ThirdPartySharing:  answers.SharesWithThirdParties(),
		GDPRCompliant:      result.GDPRCompliant,
		CCPACompliant:      result.CCPACompliant,
		LGPDCompliant:      result.LGPDCompliant,
		VulnerabilityScore: result.VulnerabilityScore,
		DocumentText:       document,
		Answers:            answers,
	}
}

func exportFilename(websiteName string) string {
	name := strings.ToLower(strings.TrimSpace(websiteName))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "policy"
	}
	return name + "-privacy-policy.txt"
}
