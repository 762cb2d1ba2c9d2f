package notifications

import (
	"context"
	"fmt"
	"time"

	"mergington-activities/src/jobs"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Notifier announces roster changes after they have been applied.
type Notifier interface {
	SignedUp(ctx context.Context, activity, email string) error
	Unregistered(ctx context.Context, activity, email string) error
}

// Enqueuer is the part of *asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

const (
	queueName   = "notifications"
	maxRetry    = 5
	taskTimeout = 30 * time.Second
)

// AsynqNotifier enqueues one task per roster change.
type AsynqNotifier struct {
	client Enqueuer
}

func NewAsynqNotifier(client Enqueuer) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) SignedUp(ctx context.Context, activity, email string) error {
	task, err := jobs.NewSignedUpTask(activity, email)
	if err != nil {
		return err
	}
	return n.enqueue(ctx, task)
}

func (n *AsynqNotifier) Unregistered(ctx context.Context, activity, email string) error {
	task, err := jobs.NewUnregisteredTask(activity, email)
	if err != nil {
		return err
	}
	return n.enqueue(ctx, task)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, task *asynq.Task) error {
	_, err := n.client.EnqueueContext(ctx, task,
		asynq.TaskID(uuid.NewString()),
		asynq.Queue(queueName),
		asynq.MaxRetry(maxRetry),
		asynq.Timeout(taskTimeout),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	return nil
}

// NopNotifier is used when no broker is configured.
type NopNotifier struct{}

func (NopNotifier) SignedUp(context.Context, string, string) error     { return nil }
func (NopNotifier) Unregistered(context.Context, string, string) error { return nil }

// QueueName is the asynq queue notification tasks are sent to.
func QueueName() string { return queueName }
