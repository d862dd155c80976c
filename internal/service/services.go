package service

import (
	"github.com/MKhiriev/acquasitions/internal/config"
	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(cfg.App, logger),
		UserService: NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
	}
}
