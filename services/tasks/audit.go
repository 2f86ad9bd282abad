package tasks

import (
	"encoding/json"

	"policygen/config"

	"github.com/hibiken/asynq"
)

const TypePolicyAudit = "policy:audit"

// PolicyAuditPayload identifies the stored policy to recompute.
type PolicyAuditPayload struct {
	PolicyID string `json:"policyId"`
}

// NewPolicyAuditTask builds an asynq task for auditing one policy.
func NewPolicyAuditTask(policyID string) (*asynq.Task, error) {
	b, err := json.Marshal(PolicyAuditPayload{PolicyID: policyID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePolicyAudit, b), nil
}

// AuditRedisOpts returns the Redis connection options for the audit queue.
func AuditRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuditDB,
	}
}

// AuditClient enqueues policy audit tasks. It satisfies the policy
// service's AuditEnqueuer.
type AuditClient struct {
	client *asynq.Client
}

// NewAuditClient creates an enqueuer backed by the audit queue.
func NewAuditClient() *AuditClient {
	return &AuditClient{client: asynq.NewClient(AuditRedisOpts())}
}

// EnqueuePolicyAudit schedules a recomputation check for the given policy.
func (c *AuditClient) EnqueuePolicyAudit(policyID string) error {
	task, err := NewPolicyAuditTask(policyID)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, asynq.MaxRetry(3))
	return err
}

// Close releases the underlying asynq client.
func (c *AuditClient) Close() error {
	return c.client.Close()
}
