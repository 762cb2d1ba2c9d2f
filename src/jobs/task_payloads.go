package jobs

import (
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
)

const (
	TypeSignedUp     = "enrollment:signed-up"
	TypeUnregistered = "enrollment:unregistered"
)

// EnrollmentPayload is the body of every enrollment notification task.
type EnrollmentPayload struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
}

func (p *EnrollmentPayload) Normalize() {
	p.Email = strings.TrimSpace(p.Email)
}

func newEnrollmentTask(typename, activity, email string, opts ...asynq.Option) (*asynq.Task, error) {
	payload := EnrollmentPayload{Activity: activity, Email: email}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(typename, b, opts...), nil
}

func NewSignedUpTask(activity, email string, opts ...asynq.Option) (*asynq.Task, error) {
	return newEnrollmentTask(TypeSignedUp, activity, email, opts...)
}

func NewUnregisteredTask(activity, email string, opts ...asynq.Option) (*asynq.Task, error) {
	return newEnrollmentTask(TypeUnregistered, activity, email, opts...)
}
