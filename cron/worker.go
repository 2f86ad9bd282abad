package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"policygen/config"
	policyRepo "policygen/database/repository/policy"
	"policygen/services/policy"
	"policygen/services/tasks"
	"policygen/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitAuditWorker runs the policy-audit worker in the background. For every
// enqueued policy it recomputes the compliance flags and score from the
// stored answers and logs any drift from what was persisted. Stored
// policies are never rewritten; a drift means the evaluator changed since
// the document was generated and is an operator signal, not a repair job.
func InitAuditWorker(repo policyRepo.PolicyRepository) {
	srv := asynq.NewServer(
		tasks.AuditRedisOpts(),
		asynq.Config{
			Concurrency: config.AppConfig.AuditConcurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePolicyAudit, handlePolicyAudit(repo))

	go func() {
		utils.GetLogger().Info("starting policy audit worker")
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("policy audit worker stopped", zap.Error(err))
		}
	}()
}

func handlePolicyAudit(repo policyRepo.PolicyRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.PolicyAuditPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid audit payload: %w", err)
		}

		record, err := repo.GetByID(ctx, payload.PolicyID)
		if err != nil {
			return fmt.Errorf("audit: failed to load policy %s: %w", payload.PolicyID, err)
		}

		recomputed := policy.Evaluate(record.Answers)
		stored := record.Compliance()
		if recomputed != stored {
			utils.GetLogger().Warn("policy compliance drift detected",
				zap.String("policyID", record.ID),
				zap.Any("stored", stored),
				zap.Any("recomputed", recomputed),
			)
			return nil
		}

		utils.GetLogger().Debug("policy audit passed", zap.String("policyID", record.ID))
		return nil
	}
}
