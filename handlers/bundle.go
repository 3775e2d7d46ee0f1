package handlers

import (
	userRepo "lumiere/database/repository/user"
)

// HandlerBundle aggregates every handler group plus the repositories the
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth      *AuthHandler
	Users     *UserHandler
	Devices   *UserDeviceHandler
	Catalog   *CatalogHandler
	Booking   *BookingHandler
	Chat      *ChatHandler
	Promotion *PromotionHandler
	Admin     *AdminHandler
	Settings  *SettingsHandler
	Storage   *StorageHandler
	Address   *AddressHandler
}
