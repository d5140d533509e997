package handler

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/siamtrans/backoffice-api/internal/application/service"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/dto/response"
)

// StoreHandler handles the client document store HTTP requests
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Get handles reading a stored collection
// @Summary Get Stored Collection
// @Description Read the raw JSON stored under a collection key
// @Tags store
// @Produce json
// @Param key path string true "Collection key"
// @Success 200 {object} response.APIResponse
// @Router /store/{key} [get]
func (h *StoreHandler) Get(c *gin.Context) {
	value, err := h.storeService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if value == nil {
		response.OK(c, "Collection is empty", json.RawMessage("null"))
		return
	}

	response.OK(c, "Collection retrieved successfully", value)
}

// Set handles replacing a stored collection
// @Summary Set Stored Collection
// @Description Replace the JSON stored under a collection key
// @Tags store
// @Accept json
// @Produce json
// @Param key path string true "Collection key"
// @Success 200 {object} response.APIResponse
// @Router /store/{key} [put]
func (h *StoreHandler) Set(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Failed to read request body")
		return
	}

	if err := h.storeService.Set(c.Request.Context(), c.Param("key"), body); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection saved successfully", nil)
}

// Remove handles deleting a stored collection
// @Summary Remove Stored Collection
// @Tags store
// @Produce json
// @Param key path string true "Collection key"
// @Success 204
// @Router /store/{key} [delete]
func (h *StoreHandler) Remove(c *gin.Context) {
	if err := h.storeService.Remove(c.Request.Context(), c.Param("key")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
