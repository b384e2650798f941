package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-user-admin/internal/application"
	"github.com/oksasatya/go-user-admin/pkg/helpers"
	"github.com/oksasatya/go-user-admin/pkg/params"
)

type AddressHandler struct {
	Svc *application.AddressService
}

func NewAddressHandler(svc *application.AddressService) *AddressHandler {
	return &AddressHandler{Svc: svc}
}

type createAddressForm struct {
	UserID string `form:"userId"`
	Street string `form:"street" binding:"required,trimmin=5"`
	Number string `form:"number"`
	City   string `form:"city" binding:"required,trimmin=2"`
}

// Create adds an address to a user and returns to that user's edit page.
// Validation failures redirect there silently; the raw userId is echoed into
// the redirect path even when it never parsed as an id.
func (h *AddressHandler) Create(c *gin.Context) {
	var req createAddressForm
	bindErr := c.ShouldBind(&req)
	// ShouldBind fills the struct before validating, so the redirect target
	// is usable on the validation-failure path too.
	target := "/users/edit/" + req.UserID
	if bindErr != nil {
		c.Redirect(http.StatusFound, target)
		return
	}

	userID, err := params.ID(req.UserID)
	if err != nil {
		helpers.LoggerFromContext(c.Request.Context()).WithField("user_id", req.UserID).Warn("create address: bad user id")
		c.Redirect(http.StatusFound, target)
		return
	}

	_, err = h.Svc.Create(c.Request.Context(), application.CreateAddressInput{
		UserID: userID,
		Street: req.Street,
		Number: req.Number,
		City:   req.City,
	})
	if err != nil {
		helpers.LoggerFromContext(c.Request.Context()).WithError(err).Error("create address")
	}
	c.Redirect(http.StatusFound, target)
}

// Delete removes an address by id. The submitted userId picks the redirect
// target only; ownership of the address is not checked against it. On any
// failure control returns to the listing.
func (h *AddressHandler) Delete(c *gin.Context) {
	log := helpers.LoggerFromContext(c.Request.Context())
	rawID := c.PostForm("id")
	userID := c.PostForm("userId")

	id, err := params.ID(rawID)
	if err != nil {
		log.WithField("id", rawID).Warn("delete address: bad id")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete address")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if userID != "" {
		c.Redirect(http.StatusFound, "/users/edit/"+userID)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
