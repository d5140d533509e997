package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/application/service"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/dto/response"
)

// DriverHandler handles driver-related HTTP requests
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// DriverRequest represents the create/update driver request body
type DriverRequest struct {
	Name          string `json:"name" binding:"required"`
	NationalID    string `json:"nationalId"`
	LicenseNo     string `json:"licenseNo"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
}

func (req *DriverRequest) toInput() *service.DriverInput {
	return &service.DriverInput{
		Name:          req.Name,
		NationalID:    optStr(req.NationalID),
		LicenseNo:     optStr(req.LicenseNo),
		Phone:         optStr(req.Phone),
		Address:       optStr(req.Address),
		AccountHolder: optStr(req.AccountHolder),
		AccountNumber: optStr(req.AccountNumber),
		BankName:      optStr(req.BankName),
	}
}

// List handles listing drivers
// @Summary List Drivers
// @Tags drivers
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /drivers [get]
func (h *DriverHandler) List(c *gin.Context) {
	result, err := h.driverService.ListDrivers(c.Request.Context(), parsePagination(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Drivers retrieved successfully", result)
}

// Get handles getting a single driver
// @Summary Get Driver
// @Tags drivers
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} response.APIResponse
// @Router /drivers/{id} [get]
func (h *DriverHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid driver ID")
		return
	}

	driver, err := h.driverService.GetDriver(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Driver retrieved successfully", driver)
}

// Create handles creating a driver
// @Summary Create Driver
// @Tags drivers
// @Accept json
// @Produce json
// @Param request body DriverRequest true "Driver data"
// @Success 201 {object} response.APIResponse
// @Router /drivers [post]
func (h *DriverHandler) Create(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Driver created successfully", driver)
}

// Update handles updating a driver
// @Summary Update Driver
// @Tags drivers
// @Accept json
// @Produce json
// @Param id path string true "Driver ID"
// @Param request body DriverRequest true "Driver data"
// @Success 200 {object} response.APIResponse
// @Router /drivers/{id} [put]
func (h *DriverHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid driver ID")
		return
	}

	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Driver updated successfully", driver)
}

// Delete handles deleting a driver
// @Summary Delete Driver
// @Tags drivers
// @Produce json
// @Param id path string true "Driver ID"
// @Success 204
// @Router /drivers/{id} [delete]
func (h *DriverHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid driver ID")
		return
	}

	if err := h.driverService.DeleteDriver(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
