package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeAdvicePosted    = "advice:posted"
	TypeLedgerReconcile = "ledger:reconcile"
)

// AdvicePostedPayload describes a question that just moved to Answered.
type AdvicePostedPayload struct {
	AdviceID   string `json:"adviceId"`
	QuestionID string `json:"questionId"`
	LawyerID   string `json:"lawyerId"`
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewAdvicePostedTask(payload AdvicePostedPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAdvicePosted, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

func ParseAdvicePosted(task *asynq.Task) (AdvicePostedPayload, error) {
	var p AdvicePostedPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}

// NewReconcileTask is registered with the scheduler; it carries no payload.
func NewReconcileTask() *asynq.Task {
	return asynq.NewTask(TypeLedgerReconcile, nil, asynq.MaxRetry(1), asynq.Timeout(5*time.Minute))
}
