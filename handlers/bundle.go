package handlers

// HandlerBundle groups the HTTP handlers so route registration takes one
// dependency instead of a handler per group.
type HandlerBundle struct {
	Booking  *BookingHandler
	Trainer  *TrainerHandler
	Merchant *MerchantHandler
}
