package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-user-admin/internal/application"
	"github.com/oksasatya/go-user-admin/internal/domain/repository"
	"github.com/oksasatya/go-user-admin/pkg/helpers"
	"github.com/oksasatya/go-user-admin/pkg/params"
	"github.com/oksasatya/go-user-admin/pkg/validation"
	"github.com/oksasatya/go-user-admin/pkg/views"
)

type UserHandler struct {
	Svc *application.UserService
	// PageSize is the listing page size used when the request carries no
	// usable limit parameter.
	PageSize int
}

func NewUserHandler(svc *application.UserService, defaultPageSize int) *UserHandler {
	return &UserHandler{Svc: svc, PageSize: defaultPageSize}
}

type createUserForm struct {
	Name       string `form:"name" binding:"required,trimmin=2"`
	Occupation string `form:"occupation"`
	Newsletter string `form:"newsletter"`
}

type updateUserForm struct {
	ID         string `form:"id"`
	Name       string `form:"name" binding:"required,trimmin=2"`
	Occupation string `form:"occupation"`
	Newsletter string `form:"newsletter"`
}

// Index renders the filtered, paginated listing. A storage failure is logged
// and the page renders with zero users and a generic message instead of
// failing the request.
func (h *UserHandler) Index(c *gin.Context) {
	page := params.PositiveInt(c.Query("page"), 1)
	limit := params.PositiveInt(c.Query("limit"), h.PageSize)
	query := c.Query("q")
	newsletter := c.Query("newsletter")

	res, err := h.Svc.List(c.Request.Context(), application.ListParams{
		Page:       page,
		Limit:      limit,
		Query:      query,
		Newsletter: params.FilterBool(newsletter),
	})
	if err != nil {
		helpers.LoggerFromContext(c.Request.Context()).WithError(err).Error("list users")
		c.HTML(http.StatusOK, views.Index, views.ListPage{
			Title:      "Users",
			Error:      "Could not load users.",
			Page:       page,
			Limit:      limit,
			Query:      query,
			Newsletter: newsletter,
		})
		return
	}

	c.HTML(http.StatusOK, views.Index, views.ListPage{
		Title:      "Users",
		Users:      res.Users,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
		Query:      query,
		Newsletter: newsletter,
	})
}

// Show renders the detail view. A bad id, a missing user and a storage
// failure all render the same error state on the detail template.
func (h *UserHandler) Show(c *gin.Context) {
	id, err := params.ID(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusOK, views.UserShow, views.UserShowPage{Title: "User", Error: "User not found."})
		return
	}

	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			helpers.LoggerFromContext(c.Request.Context()).WithError(err).Error("load user detail")
		}
		c.HTML(http.StatusOK, views.UserShow, views.UserShowPage{Title: "User", Error: "User not found."})
		return
	}

	c.HTML(http.StatusOK, views.UserShow, views.UserShowPage{Title: u.Name, User: u})
}

// Edit renders the edit form with the user's addresses newest first. Unlike
// Show, any failure redirects back to the listing.
func (h *UserHandler) Edit(c *gin.Context) {
	id, err := params.ID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	u, err := h.Svc.GetForEdit(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			helpers.LoggerFromContext(c.Request.Context()).WithError(err).Error("load user for edit")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, views.UserEdit, views.UserEditPage{Title: "Edit " + u.Name, User: u})
}

// CreateForm renders the empty create form.
func (h *UserHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.UserCreate, views.UserFormPage{Title: "New user"})
}

// Create persists a new user. Validation failures re-render the form with the
// submitted values untouched; a persistence failure does the same but echoes
// the failure detail.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserForm
	if err := c.ShouldBind(&req); err != nil {
		msg := "Invalid input."
		if d, ok := validation.ToDetails(err)["name"]; ok {
			msg = "Name " + d + "."
		}
		c.HTML(http.StatusOK, views.UserCreate, views.UserFormPage{
			Title:      "New user",
			Error:      msg,
			Name:       req.Name,
			Occupation: req.Occupation,
			Newsletter: params.Checkbox(req.Newsletter),
		})
		return
	}

	_, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Name:       req.Name,
		Occupation: req.Occupation,
		Newsletter: params.Checkbox(req.Newsletter),
	})
	if err != nil {
		helpers.LoggerFromContext(c.Request.Context()).WithError(err).Error("create user")
		c.HTML(http.StatusOK, views.UserCreate, views.UserFormPage{
			Title:      "New user",
			Error:      "Could not create user: " + err.Error(),
			Name:       req.Name,
			Occupation: req.Occupation,
			Newsletter: params.Checkbox(req.Newsletter),
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Update rewrites a user's fields. Every failure, including a name that fails
// validation, redirects silently to the edit page for the submitted id; the
// raw id string is echoed into the path, so an absent id produces
// /users/edit/ which falls through to the 404 handler.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserForm
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/users/edit/"+req.ID)
		return
	}

	id, err := params.ID(req.ID)
	if err != nil {
		c.Redirect(http.StatusFound, "/users/edit/"+req.ID)
		return
	}

	err = h.Svc.Update(c.Request.Context(), application.UpdateUserInput{
		ID:         id,
		Name:       req.Name,
		Occupation: req.Occupation,
		Newsletter: params.Checkbox(req.Newsletter),
	})
	if err != nil {
		helpers.LoggerFromContext(c.Request.Context()).WithError(err).Error("update user")
		c.Redirect(http.StatusFound, "/users/edit/"+req.ID)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete removes a user and its addresses, then returns to the listing no
// matter what happened.
func (h *UserHandler) Delete(c *gin.Context) {
	log := helpers.LoggerFromContext(c.Request.Context())

	id, err := params.ID(c.Param("id"))
	if err != nil {
		log.WithField("id", c.Param("id")).Warn("delete user: bad id")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete user")
	}
	c.Redirect(http.StatusFound, "/")
}

// NotFound renders the listing shell with an error message for any route the
// router does not know.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, views.Index, views.ListPage{Title: "Users", Error: "Page not found."})
}
