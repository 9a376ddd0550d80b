package merchantRepo

import "onboardify/models"

// MerchantRepository defines methods for merchant data access.
type MerchantRepository interface {
	// GetByID retrieves a merchant by its unique ID.
	GetByID(id string) (*models.Merchant, error)
	// GetAll retrieves all merchants.
	GetAll() ([]models.Merchant, error)
	// Create inserts a new merchant record.
	Create(merchant *models.Merchant) error
	// Update modifies an existing merchant record.
	Update(merchant *models.Merchant) error
	// SetStage updates a merchant's onboarding stage.
	SetStage(id string, stage string) error
}
