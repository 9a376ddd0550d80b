package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"onboardify/config"
	"onboardify/models"
	"onboardify/services/crm"
	"onboardify/services/notification"
	"onboardify/services/tasks"

	"github.com/hibiken/asynq"
)

// InitTaskWorker runs the async worker in background. It drains the CRM
// re-sync queue and fires scheduled appointment reminders.
func InitTaskWorker(crmClient crm.Client, notifSvc notification.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCrmSync, handleCrmSyncTask(crmClient))
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[TaskWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TaskWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TaskWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleCrmSyncTask replays a failed CRM field write. Returning the error
// lets asynq back off and retry until MaxRetry is exhausted.
func handleCrmSyncTask(crmClient crm.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.CrmSyncPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CrmSyncHandler] invalid payload: %v", err)
			return err
		}

		if err := crmClient.UpdateRecord(ctx, p.RecordID, p.Fields); err != nil {
			log.Printf("[CrmSyncHandler] retryable CRM update failure for record %s: %v", p.RecordID, err)
			return err
		}
		log.Printf("[CrmSyncHandler] record %s synced", p.RecordID)
		return nil
	}
}

func handleReminderTask(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"type":     "appointment_reminder",
			"fireDate": p.FireDate,
		}
		if err := notifSvc.SendMerchantPush(ctx, p.MerchantID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder: %v", err)
		}
		// Reminders are not retried; a missed push is not worth re-queueing.
		return nil
	}
}
