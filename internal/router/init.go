package router

import (
	"github.com/oksasatya/go-user-admin/internal/application"
	"github.com/oksasatya/go-user-admin/internal/container"
	"github.com/oksasatya/go-user-admin/internal/domain/repository"
	"github.com/oksasatya/go-user-admin/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-user-admin/internal/interface/http"
	"github.com/oksasatya/go-user-admin/internal/router/modules"
)

type ModuleDeps struct {
	Users     repository.UserRepository
	Addresses repository.AddressRepository

	UserService    *application.UserService
	AddressService *application.AddressService

	UserHandler    *handlers.UserHandler
	AddressHandler *handlers.AddressHandler
}

func buildModuleDeps() ModuleDeps {
	db := container.GetDB()
	cfg := container.GetConfig()

	users := postgres.NewUserRepository(db)
	addresses := postgres.NewAddressRepository(db)

	userService := application.NewUserService(users, addresses)
	addressService := application.NewAddressService(addresses)

	return ModuleDeps{
		Users:          users,
		Addresses:      addresses,
		UserService:    userService,
		AddressService: addressService,
		UserHandler:    handlers.NewUserHandler(userService, cfg.DefaultPageSize),
		AddressHandler: handlers.NewAddressHandler(addressService),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildModuleDeps()
	r.Add(modules.NewUserModule(deps.UserHandler))
	r.Add(modules.NewAddressModule(deps.AddressHandler))
	r.Add(modules.NewDebugModule())
}
