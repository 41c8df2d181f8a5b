package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendEmailTaskName  = "sendEmailTask"
	SendEmailQueueName = "sendEmailQueue"
)

// Email kinds routed by the worker to the matching subject and template.
const (
	EmailKindConfirmation  = "confirmation"
	EmailKindPasswordReset = "password_reset"
)

type SendEmail struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
	Link  string `json:"link"`
}

// NewSendEmailTask builds a durable send-email task. MaxRetry keeps
// delivery at-least-once; the rendered emails are idempotent so re-delivery
// is safe.
func NewSendEmailTask(kind, email, link string) (*asynq.Task, error) {
	var data SendEmail
	data.Kind = kind
	data.Email = email
	data.Link = link

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendEmailQueueName),
	), nil
}
