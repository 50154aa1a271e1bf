package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hetu-labs/hetu-middleware/internal/subnet"
)

// CreateSubnetRequest is the body of POST /subnet/create.
type CreateSubnetRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	TwitterURL  string  `json:"twitter_url" binding:"required"`
	FluxReward  float64 `json:"flux_reward" binding:"required,gt=0"`
}

// Handler serves the subnet endpoints.
type Handler struct {
	service *subnet.Service
}

// NewHandler creates a subnet handler.
func NewHandler(service *subnet.Service) *Handler {
	return &Handler{service: service}
}

// CreateSubnet handles POST /subnet/create.
func (h *Handler) CreateSubnet(c *gin.Context) {
	var body CreateSubnetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body: " + err.Error()})
		return
	}

	result := h.service.CreateSubnet(c.Request.Context(), subnet.CreateSubnetRequest{
		Name:        body.Name,
		Description: body.Description,
		TwitterURL:  body.TwitterURL,
		FluxReward:  body.FluxReward,
	})
	c.JSON(http.StatusOK, result)
}

// RegisterRoutes mounts the subnet endpoints on the given router group.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/subnet/create", h.CreateSubnet)
}
