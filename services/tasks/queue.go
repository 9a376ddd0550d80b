package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"onboardify/config"
	"onboardify/models"

	"github.com/hibiken/asynq"
)

const (
	TypeCrmSync      = "crm:sync"
	TypeReminderSend = "reminder:send"
)

// NewCrmSyncTask builds an asynq task that replays a failed CRM field write.
func NewCrmSyncTask(payload models.CrmSyncPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCrmSync, b), nil
}

// NewReminderTask builds a scheduled appointment-reminder task.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// AsynqQueue enqueues booking follow-up work onto Redis.
type AsynqQueue struct {
	client *asynq.Client
}

func NewAsynqQueue() *AsynqQueue {
	return &AsynqQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		}),
	}
}

func (q *AsynqQueue) EnqueueCrmSync(payload models.CrmSyncPayload) error {
	task, err := NewCrmSyncTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build CRM sync task: %w", err)
	}
	if _, err := q.client.Enqueue(task, asynq.MaxRetry(10)); err != nil {
		return fmt.Errorf("failed to enqueue CRM sync task: %w", err)
	}
	return nil
}

func (q *AsynqQueue) EnqueueReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := q.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
