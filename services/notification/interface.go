package notification

import (
	"context"
	"fmt"

	merchantRepo "onboardify/database/repository/merchant"
	"onboardify/utils"

	"firebase.google.com/go/v4/messaging"
)

// Service defines methods for sending merchant-facing pushes. All sends are
// fire-and-forget from the booking core's perspective.
type Service interface {
	SendMerchantPush(ctx context.Context, merchantID, title, body string, data map[string]string) error
}

// FCMService is the production implementation backed by Firebase Cloud
// Messaging.
type FCMService struct {
	merchants merchantRepo.MerchantRepository
}

func NewFCMService(merchants merchantRepo.MerchantRepository) (*FCMService, error) {
	if merchants == nil {
		return nil, fmt.Errorf("notification service initialization error: merchant repository is nil")
	}
	return &FCMService{merchants: merchants}, nil
}

// SendMerchantPush looks up a merchant's FCM token and sends a push.
func (s *FCMService) SendMerchantPush(ctx context.Context, merchantID, title, body string, data map[string]string) error {
	m, err := s.merchants.GetByID(merchantID)
	if err != nil {
		return fmt.Errorf("SendMerchantPush: could not find merchant %s: %w", merchantID, err)
	}
	if m.FCMToken == "" {
		return fmt.Errorf("SendMerchantPush: merchant %s has no FCM token", merchantID)
	}

	msg := &messaging.Message{
		Token: m.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendMerchantPush: failed to send FCM message: %w", err)
	}
	return nil
}
