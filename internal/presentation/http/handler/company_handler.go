package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/siamtrans/backoffice-api/internal/application/service"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/dto/response"
)

// CompanyHandler handles company info HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest represents the company info request body
type CompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	TaxID         string `json:"taxId"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LogoPath      string `json:"logoPath"`
	SignaturePath string `json:"signaturePath"`
}

// Get handles getting the company info
// @Summary Get Company Info
// @Tags company
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /company [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	info, err := h.companyService.GetCompanyInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company info retrieved successfully", info)
}

// Save handles saving the company info
// @Summary Save Company Info
// @Description Create the company info on first write, update it afterwards
// @Tags company
// @Accept json
// @Produce json
// @Param request body CompanyRequest true "Company data"
// @Success 200 {object} response.APIResponse
// @Router /company [put]
func (h *CompanyHandler) Save(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	info, err := h.companyService.SaveCompanyInfo(c.Request.Context(), &service.CompanyInput{
		Name:          req.Name,
		Address:       optStr(req.Address),
		TaxID:         optStr(req.TaxID),
		Phone:         optStr(req.Phone),
		Email:         optStr(req.Email),
		LogoPath:      optStr(req.LogoPath),
		SignaturePath: optStr(req.SignaturePath),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company info saved successfully", info)
}
