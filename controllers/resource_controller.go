package controllers

import (
	"net/http"

	"github.com/Leerling-hub/Booking/dto"
	"github.com/Leerling-hub/Booking/services"
	"github.com/gin-gonic/gin"
)

// ResourceController exposes the CRUD endpoints of one resource
type ResourceController[T any] struct {
	service services.ResourceService[T]
}

// NewResourceController creates a controller for service
func NewResourceController[T any](service services.ResourceService[T]) *ResourceController[T] {
	return &ResourceController[T]{service: service}
}

// Register mounts the five routes on group, e.g. GET /amenities and GET /amenities/:id
func (ctrl *ResourceController[T]) Register(group gin.IRoutes, path string) {
	group.GET(path, ctrl.List)
	group.POST(path, ctrl.Create)
	group.GET(path+"/:id", ctrl.Get)
	group.PUT(path+"/:id", ctrl.Replace)
	group.DELETE(path+"/:id", ctrl.Delete)
}

// List handles GET /<resource>?<filter>=<value>
func (ctrl *ResourceController[T]) List(c *gin.Context) {
	rows, err := ctrl.service.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create handles POST /<resource>
func (ctrl *ResourceController[T]) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	entity, err := ctrl.service.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

// Get handles GET /<resource>/:id
func (ctrl *ResourceController[T]) Get(c *gin.Context) {
	entity, err := ctrl.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Replace handles PUT /<resource>/:id. Every writable field is replaced.
func (ctrl *ResourceController[T]) Replace(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	entity, err := ctrl.service.Replace(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Delete handles DELETE /<resource>/:id and answers 204 without a body
func (ctrl *ResourceController[T]) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
