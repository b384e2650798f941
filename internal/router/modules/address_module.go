package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-admin/internal/interface/http"
)

// AddressModule wires the address lifecycle routes. Both redirect back to the
// owning user's edit page.
// POST /address/create  body: userId, street, number, city
// POST /address/delete  body: id, userId

type AddressModule struct {
	Handler *handlers.AddressHandler
}

func NewAddressModule(h *handlers.AddressHandler) *AddressModule {
	return &AddressModule{Handler: h}
}

func (m *AddressModule) Register(rg *gin.RouterGroup) {
	rg.POST("/address/create", m.Handler.Create)
	rg.POST("/address/delete", m.Handler.Delete)
}
