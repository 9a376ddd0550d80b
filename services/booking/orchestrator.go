package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	merchantRepo "onboardify/database/repository/merchant"
	trainerRepo "onboardify/database/repository/trainer"
	"onboardify/models"
	"onboardify/services/calendar"
	"onboardify/services/crm"
	"onboardify/services/notification"

	"go.uber.org/zap"
)

// DefaultBookingService runs the booking pipeline: validate, check
// availability, filter authorized trainers, assign, mutate the calendar,
// sync the CRM, notify. The calendar event is the durable artifact; CRM and
// notification failures downgrade to warnings.
type DefaultBookingService struct {
	Aggregator   AvailabilityService
	TrainerRepo  trainerRepo.TrainerRepository
	MerchantRepo merchantRepo.MerchantRepository
	Calendar     calendar.API
	CRM          crm.Client
	FieldMap     *crm.FieldMapper
	Notifier     notification.Service
	Tasks        Queue
	Logger       *zap.Logger
}

func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	merchant, err := s.MerchantRepo.GetByID(req.MerchantID)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("unknown merchant %s", req.MerchantID))
	}

	// Region coverage only constrains on-site visits; language preference
	// falls back to the merchant profile when the request leaves it empty.
	region := ""
	if req.Category.OnSite() {
		region = req.Region
		if region == "" {
			region = merchant.Region
		}
	}
	languages := req.Languages
	if len(languages) == 0 {
		languages = merchant.PreferredLanguages
	}

	availability, err := s.Aggregator.SlotAvailability(ctx, SlotQuery{
		Date:   req.Date,
		Start:  req.Start,
		End:    req.End,
		Region: region,
	})
	if err != nil {
		return nil, err
	}
	if !availability.Available || len(availability.Trainers) == 0 {
		return nil, NewNoAvailabilityError("no trainers available for this time slot")
	}

	authorized := s.filterAuthorized(availability.Trainers)
	if len(authorized) == 0 {
		return nil, NewNoAuthorizedTrainerError("no available trainer has granted calendar access; chase trainer onboarding")
	}

	assignment, err := AssignTrainer(authorized, languages)
	if err != nil {
		return nil, err
	}
	trainer := pickByID(authorized, assignment.TrainerID)

	eventID, err := s.mutateCalendar(ctx, trainer, merchant, req, assignment)
	if err != nil {
		return nil, err
	}

	result := &models.BookingResult{
		TrainerID: trainer.ID,
		Reason:    assignment.Reason,
		EventID:   eventID,
		CrmSynced: true,
		BookedAt:  time.Now(),
	}

	// CRM failure does not roll back the calendar event. The write is
	// re-queued and the caller is told the sync is pending.
	if err := s.updateRecord(ctx, merchant, trainer, req); err != nil {
		s.Logger.Warn("CRM update failed, booking soft-succeeded",
			zap.String("merchantId", merchant.ID),
			zap.String("recordId", merchant.CRMRecordID),
			zap.Error(err))
		result.CrmSynced = false
		result.Warning = "booking confirmed, CRM sync pending"
	}

	s.notify(ctx, merchant, trainer, req)

	return result, nil
}

func validateRequest(req models.BookingRequest) error {
	if strings.TrimSpace(req.MerchantID) == "" {
		return NewValidationError("merchant identity is required")
	}
	if _, err := time.ParseInLocation(calendar.DateLayout, req.Date, time.Local); err != nil {
		return NewValidationError(fmt.Sprintf("invalid booking date %q", req.Date))
	}
	if req.Start <= 0 || req.End <= 0 || req.Start >= req.End {
		return NewValidationError("a start and end time are required")
	}
	if !req.Category.Valid() {
		return NewValidationError(fmt.Sprintf("unknown booking category %q", req.Category))
	}
	return nil
}

// filterAuthorized resolves trainer records concurrently and keeps those with
// a calendar grant. The lookups are independent I/O calls joined before the
// pipeline continues; a failed lookup drops that candidate with a log line.
func (s *DefaultBookingService) filterAuthorized(ids []string) []models.Trainer {
	results := make(chan *models.Trainer, len(ids))
	var wg sync.WaitGroup

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			trainer, err := s.TrainerRepo.GetByID(id)
			if err != nil {
				s.Logger.Warn("failed to resolve candidate trainer", zap.String("trainerId", id), zap.Error(err))
				results <- nil
				return
			}
			results <- trainer
		}(id)
	}

	wg.Wait()
	close(results)

	var authorized []models.Trainer
	for trainer := range results {
		if trainer == nil {
			continue
		}
		if trainer.Calendar.Authorized && trainer.Calendar.RefreshToken != "" {
			authorized = append(authorized, *trainer)
		}
	}
	return authorized
}

// mutateCalendar deletes the old event on a reschedule (non-fatal: the stale
// event may already be gone) and creates the new one (fatal on failure, and
// no CRM write is attempted afterwards).
func (s *DefaultBookingService) mutateCalendar(ctx context.Context, trainer models.Trainer, merchant *models.Merchant, req models.BookingRequest, assignment models.AssignmentResult) (string, error) {
	ref := calendar.CalendarRef{
		CalendarID:   trainer.CalendarID,
		RefreshToken: trainer.Calendar.RefreshToken,
	}

	if req.ExistingEventID != "" {
		if err := s.Calendar.DeleteEvent(ctx, ref, req.ExistingEventID); err != nil {
			s.Logger.Warn("failed to cancel previous event during reschedule",
				zap.String("eventId", req.ExistingEventID),
				zap.String("trainerId", trainer.ID),
				zap.Error(err))
		}
	}

	day, _ := time.ParseInLocation(calendar.DateLayout, req.Date, time.Local)
	event := calendar.EventInput{
		Title:       fmt.Sprintf("%s: %s", categoryTitle(req.Category), merchant.BusinessName),
		Description: fmt.Sprintf("Booked via onboarding portal. Assignment: %s.", assignment.Reason),
		Start:       day.Add(time.Duration(req.Start) * time.Minute),
		End:         day.Add(time.Duration(req.End) * time.Minute),
		Attendees:   []string{trainer.Email, merchant.ContactEmail},
	}
	if req.Category.OnSite() {
		event.Location = merchant.Address
	}

	eventID, err := s.Calendar.CreateEvent(ctx, ref, event)
	if err != nil {
		return "", NewCalendarMutationError(fmt.Sprintf("failed to create calendar event: %v", err))
	}
	return eventID, nil
}

func (s *DefaultBookingService) updateRecord(ctx context.Context, merchant *models.Merchant, trainer models.Trainer, req models.BookingRequest) error {
	fields, err := s.FieldMap.Fields(req.Category, req.Date, trainer.Name)
	if err != nil {
		return err
	}
	if err := s.CRM.UpdateRecord(ctx, merchant.CRMRecordID, fields); err != nil {
		if s.Tasks != nil {
			payload := models.CrmSyncPayload{RecordID: merchant.CRMRecordID, Fields: fields}
			if qErr := s.Tasks.EnqueueCrmSync(payload); qErr != nil {
				s.Logger.Error("failed to enqueue CRM re-sync", zap.Error(qErr))
			}
		}
		return err
	}

	if mapping, ok := s.FieldMap.Mapping(req.Category); ok && mapping.Stage != "" {
		if err := s.MerchantRepo.SetStage(merchant.ID, mapping.Stage); err != nil {
			s.Logger.Warn("failed to advance merchant stage", zap.String("merchantId", merchant.ID), zap.Error(err))
		}
	}
	return nil
}

// notify is best-effort: push now, reminder the morning before. Failures are
// logged and never surfaced to the caller.
func (s *DefaultBookingService) notify(ctx context.Context, merchant *models.Merchant, trainer models.Trainer, req models.BookingRequest) {
	if s.Notifier == nil {
		return
	}

	window := models.TimeSlot{Date: req.Date, Start: req.Start, End: req.End}
	title := fmt.Sprintf("%s booked", categoryTitle(req.Category))
	body := fmt.Sprintf("%s with %s on %s, %s.",
		categoryTitle(req.Category), trainer.Name, req.Date, window.Label())
	data := map[string]string{"type": "booking_confirmed", "category": string(req.Category)}
	if err := s.Notifier.SendMerchantPush(ctx, merchant.ID, title, body, data); err != nil {
		s.Logger.Warn("booking notification failed", zap.String("merchantId", merchant.ID), zap.Error(err))
	}

	if s.Tasks == nil {
		return
	}
	day, _ := time.ParseInLocation(calendar.DateLayout, req.Date, time.Local)
	fireAt := day.Add(time.Duration(req.Start)*time.Minute - 24*time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		MerchantID: merchant.ID,
		Title:      fmt.Sprintf("Reminder: %s tomorrow", categoryTitle(req.Category)),
		Body:       body,
		FireDate:   fireAt.Format(time.RFC3339),
	}
	if err := s.Tasks.EnqueueReminder(payload, fireAt); err != nil {
		s.Logger.Warn("failed to schedule reminder", zap.String("merchantId", merchant.ID), zap.Error(err))
	}
}

func pickByID(trainers []models.Trainer, id string) models.Trainer {
	for _, t := range trainers {
		if t.ID == id {
			return t
		}
	}
	return models.Trainer{ID: id}
}

func categoryTitle(c models.BookingCategory) string {
	switch c {
	case models.CategoryInstallation:
		return "Installation visit"
	case models.CategoryTraining:
		return "Training session"
	case models.CategoryHardware:
		return "Hardware fulfillment"
	case models.CategoryGoLive:
		return "Go-live call"
	}
	return "Appointment"
}
