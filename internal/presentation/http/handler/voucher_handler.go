package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/application/adapter"
	"github.com/siamtrans/backoffice-api/internal/application/service"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/dto/response"
	"github.com/siamtrans/backoffice-api/pkg/totals"
)

// VoucherHandler handles payment voucher HTTP requests
type VoucherHandler struct {
	voucherService *service.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// VoucherRequest represents the create/update voucher request body. It uses
// the UI's camelCase field names; numeric fields tolerate string values.
type VoucherRequest struct {
	VoucherNumber string               `json:"voucherNumber"`
	DriverID      string               `json:"driverId"`
	IssueDate     string               `json:"issueDate"`
	Notes         string               `json:"notes"`
	Items         []VoucherItemRequest `json:"items"`
}

// VoucherItemRequest represents one trip line in the request
type VoucherItemRequest struct {
	ItemDate        string      `json:"itemDate"`
	Description     string      `json:"description"`
	Size            string      `json:"size"`
	PricePerTrip    interface{} `json:"pricePerTrip"`
	AdvancePayment  interface{} `json:"advancePayment"`
	PickupReturnFee interface{} `json:"pickupReturnFee"`
}

func (req *VoucherRequest) toEntity() *entity.PaymentVoucher {
	voucher := &entity.PaymentVoucher{
		VoucherNumber: req.VoucherNumber,
	}

	if id, err := uuid.Parse(req.DriverID); err == nil && id != uuid.Nil {
		voucher.DriverID = &id
	}

	if issued := adapter.NormalizeDate(req.IssueDate); issued != "" {
		if t, err := time.Parse("2006-01-02", issued); err == nil {
			voucher.IssueDate = t
		}
	}

	if req.Notes != "" {
		notes := req.Notes
		voucher.Notes = &notes
	}

	voucher.Items = make([]entity.PaymentVoucherItem, 0, len(req.Items))
	for i, item := range req.Items {
		voucherItem := entity.PaymentVoucherItem{
			Position:        i + 1,
			Description:     item.Description,
			PricePerTrip:    totals.ToNumber(item.PricePerTrip),
			AdvancePayment:  totals.ToNumber(item.AdvancePayment),
			PickupReturnFee: totals.ToNumber(item.PickupReturnFee),
		}
		if itemDate := adapter.NormalizeDate(item.ItemDate); itemDate != "" {
			if t, err := time.Parse("2006-01-02", itemDate); err == nil {
				voucherItem.ItemDate = &t
			}
		}
		if item.Size != "" {
			size := item.Size
			voucherItem.Size = &size
		}
		voucher.Items = append(voucher.Items, voucherItem)
	}

	return voucher
}

// List handles listing payment vouchers
// @Summary List Payment Vouchers
// @Description Get payment vouchers with pagination and filtering
// @Tags vouchers
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param driver_id query string false "Driver filter"
// @Success 200 {object} response.APIResponse
// @Router /payment-vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	input := &service.ListVouchersInput{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
	}

	if did := c.Query("driver_id"); did != "" {
		parsed, err := uuid.Parse(did)
		if err != nil {
			response.BadRequest(c, "Invalid driver ID")
			return
		}
		input.DriverID = &parsed
	}

	result, err := h.voucherService.ListVouchers(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payment vouchers retrieved successfully", result)
}

// Get handles getting a single payment voucher
// @Summary Get Payment Voucher
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} response.APIResponse
// @Router /payment-vouchers/{id} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment voucher retrieved successfully", voucher)
}

// Create handles creating a payment voucher
// @Summary Create Payment Voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Param request body VoucherRequest true "Voucher data"
// @Success 201 {object} response.APIResponse
// @Router /payment-vouchers [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req.toEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment voucher created successfully", voucher)
}

// Update handles updating a payment voucher
// @Summary Update Payment Voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID"
// @Param request body VoucherRequest true "Voucher data"
// @Success 200 {object} response.APIResponse
// @Router /payment-vouchers/{id} [put]
func (h *VoucherHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	voucher, err := h.voucherService.UpdateVoucher(c.Request.Context(), id, req.toEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment voucher updated successfully", voucher)
}

// Delete handles deleting a payment voucher
// @Summary Delete Payment Voucher
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 204
// @Router /payment-vouchers/{id} [delete]
func (h *VoucherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
