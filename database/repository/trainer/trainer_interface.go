package trainerRepo

import "onboardify/models"

// TrainerRepository defines methods for trainer data access. Trainer records
// are maintained by the CRM configuration sync; the booking core only flips
// the calendar grant.
type TrainerRepository interface {
	// GetByID retrieves a trainer by its unique ID.
	GetByID(id string) (*models.Trainer, error)
	// GetByEmail retrieves a trainer by email address.
	GetByEmail(email string) (*models.Trainer, error)
	// GetAll retrieves all trainers.
	GetAll() ([]models.Trainer, error)
	// GetActive retrieves all trainers currently offerable for bookings.
	GetActive() ([]models.Trainer, error)
	// Upsert inserts or replaces a trainer record (configuration sync).
	Upsert(trainer *models.Trainer) error
	// SetCalendarGrant updates a trainer's calendar authorization state.
	SetCalendarGrant(id string, grant models.CalendarGrant) error
	// Delete removes a trainer record by its ID.
	Delete(id string) error
}
