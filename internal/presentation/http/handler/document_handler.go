package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/application/adapter"
	"github.com/siamtrans/backoffice-api/internal/application/service"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/dto/response"
)

// DocumentHandler handles HTTP requests for one document type. The same
// handler serves /quotations, /invoices and /receipts; quotation instances
// additionally carry the mirror coordinator so every save produces the
// paired invoice write.
type DocumentHandler struct {
	docType         enum.DocumentType
	documentService *service.DocumentService
	mirror          *service.MirrorCoordinator
}

// NewDocumentHandler creates a document handler for one document type.
// mirror must be non-nil only for the quotation handler.
func NewDocumentHandler(docType enum.DocumentType, documentService *service.DocumentService, mirror *service.MirrorCoordinator) *DocumentHandler {
	return &DocumentHandler{
		docType:         docType,
		documentService: documentService,
		mirror:          mirror,
	}
}

// UpdateStatusRequest represents the status change request body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// mirrorEnvelope pairs a saved quotation with the outcome of its invoice
// mirror write
type mirrorEnvelope struct {
	Document interface{}                `json:"document"`
	Mirror   *service.MirrorWriteResult `json:"mirror"`
}

func (h *DocumentHandler) label() string {
	switch h.docType {
	case enum.DocumentTypeInvoice:
		return "Invoice"
	case enum.DocumentTypeReceipt:
		return "Receipt"
	default:
		return "Quotation"
	}
}

// List handles listing documents
// @Summary List Documents
// @Description Get documents of one type with pagination and filtering
// @Tags documents
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query string false "Status filter"
// @Param customer_id query string false "Customer filter"
// @Param doc_number query string false "Exact document number"
// @Success 200 {object} response.APIResponse
// @Router /{documents} [get]
func (h *DocumentHandler) List(c *gin.Context) {
	input := &service.ListDocumentsInput{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		DocNumber:  c.Query("doc_number"),
	}

	// The invoice list doubles as the mirror lookup used when checking
	// whether a quotation already has its paired invoice
	if input.DocNumber == "" && h.docType == enum.DocumentTypeInvoice {
		input.DocNumber = c.Query("invoice_number")
	}

	if s := c.Query("status"); s != "" {
		status, ok := enum.ParseDocumentStatus(s)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}

	if cid := c.Query("customer_id"); cid != "" {
		parsed, err := uuid.Parse(cid)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		input.CustomerID = &parsed
	}

	result, err := h.documentService.ListDocuments(c.Request.Context(), h.docType, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, h.label()+"s retrieved successfully", result)
}

// Get handles getting a single document
// @Summary Get Document
// @Description Get a document by ID with its line items
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.APIResponse
// @Router /{documents}/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), h.docType, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label()+" retrieved successfully", doc)
}

// Create handles creating a document
// @Summary Create Document
// @Description Create a new document from the editing payload
// @Tags documents
// @Accept json
// @Produce json
// @Param request body adapter.DocumentPayload true "Document data"
// @Success 201 {object} response.APIResponse
// @Router /{documents} [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var payload adapter.DocumentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	doc := adapter.ToDocument(&payload)

	if h.mirror != nil {
		created, result, err := h.mirror.CreateQuotation(c.Request.Context(), doc)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, h.label()+" created successfully", mirrorEnvelope{Document: created, Mirror: result})
		return
	}

	created, err := h.documentService.CreateDocument(c.Request.Context(), h.docType, doc)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.label()+" created successfully", created)
}

// Update handles updating a document
// @Summary Update Document
// @Description Replace the editable fields and line items of a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body adapter.DocumentPayload true "Document data"
// @Success 200 {object} response.APIResponse
// @Router /{documents}/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var payload adapter.DocumentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	doc := adapter.ToDocument(&payload)

	if h.mirror != nil {
		updated, result, err := h.mirror.UpdateQuotation(c.Request.Context(), id, doc)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, h.label()+" updated successfully", mirrorEnvelope{Document: updated, Mirror: result})
		return
	}

	updated, err := h.documentService.UpdateDocument(c.Request.Context(), h.docType, id, doc)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label()+" updated successfully", updated)
}

// Delete handles deleting a document
// @Summary Delete Document
// @Description Delete a document and its line items
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 204
// @Router /{documents}/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), h.docType, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateStatus handles status changes for invoices and receipts
// @Summary Update Document Status
// @Description Move a document to a new status
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /{documents}/{id}/status [patch]
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status, ok := enum.ParseDocumentStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Unknown status: "+req.Status)
		return
	}

	doc, err := h.documentService.UpdateDocumentStatus(c.Request.Context(), h.docType, id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label()+" status updated successfully", doc)
}

// Send handles sending a quotation to its customer
// @Summary Send Quotation
// @Description Mark a draft quotation as sent and email the customer
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id}/send [post]
func (h *DocumentHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	doc, err := h.documentService.SendQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation sent successfully", doc)
}

// Approve handles approving a sent quotation
// @Summary Approve Quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id}/approve [post]
func (h *DocumentHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	doc, err := h.documentService.ApproveQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation approved successfully", doc)
}

// Reject handles rejecting a sent quotation
// @Summary Reject Quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id}/reject [post]
func (h *DocumentHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	doc, err := h.documentService.RejectQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation rejected successfully", doc)
}
