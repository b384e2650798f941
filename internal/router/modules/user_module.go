package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-admin/internal/interface/http"
)

// UserModule wires the listing and the user lifecycle routes.
// GET  /                  filtered, paginated listing (page, limit, q, newsletter)
// GET  /users/create      create form
// POST /users/create      create
// GET  /users/:id         detail view
// GET  /users/edit/:id    edit view, addresses newest first
// POST /users/update      update
// POST /users/delete/:id  cascade delete (addresses first)

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Index)

	rg.GET("/users/create", m.Handler.CreateForm)
	rg.POST("/users/create", m.Handler.Create)
	rg.GET("/users/:id", m.Handler.Show)
	rg.GET("/users/edit/:id", m.Handler.Edit)
	rg.POST("/users/update", m.Handler.Update)
	rg.POST("/users/delete/:id", m.Handler.Delete)
}
