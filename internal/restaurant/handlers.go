package restaurant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"likeat/internal/core"
	"likeat/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type listQuery struct {
	Status string `form:"status"`
	Query  string `form:"q" validate:"max=100"`
	Page   int    `form:"page" validate:"omitempty,gte=1"`
	Limit  int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

type clientParam struct {
	ID string `uri:"id" validate:"required,uuid"`
}

// --------------------------------------------------
// GET /restaurants
// --------------------------------------------------
func (h *Handler) ListApproved(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	page, err := h.service.Search(c.Request.Context(), SearchParams{
		Status: string(StatusApproved),
		Query:  q.Query,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// --------------------------------------------------
// GET /restaurants/me
// --------------------------------------------------
func (h *Handler) ListMyRestaurants(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	views, err := h.service.ListByClient(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// --------------------------------------------------
// ADMIN: GET /admin/restaurants?status=
// --------------------------------------------------
func (h *Handler) ListByStatus(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	if q.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	page, err := h.service.Search(c.Request.Context(), SearchParams{
		Status: q.Status,
		Query:  q.Query,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// --------------------------------------------------
// ADMIN: GET /admin/clients/:id/restaurants
// --------------------------------------------------
func (h *Handler) ListClientRestaurants(c *gin.Context) {
	var p clientParam
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}
	if verrs := middleware.ValidateRequest(p); verrs != nil {
		middleware.RespondWithValidationError(c, verrs)
		return
	}

	views, err := h.service.ListByClient(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func bindListQuery(c *gin.Context) (listQuery, bool) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return q, false
	}
	if verrs := middleware.ValidateRequest(q); verrs != nil {
		middleware.RespondWithValidationError(c, verrs)
		return q, false
	}
	return q, true
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "restaurant store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
	}
}
