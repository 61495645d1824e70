package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/contracts"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
	"listings-gateway/internal/core/port/usecases_port"
)

const maxEnquiryBodyBytes = 64 * 1024

type EnquiriesHandler struct {
	submitEnquiryUC usecases_port.SubmitEnquiryUseCase
}

func NewEnquiriesHandler(submitEnquiryUC usecases_port.SubmitEnquiryUseCase) *EnquiriesHandler {
	return &EnquiriesHandler{submitEnquiryUC: submitEnquiryUC}
}

type enquiryRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Message         string `json:"message"`
	PropertyAddress string `json:"propertyAddress"`
	PropertyType    string `json:"propertyType"`
	ListingID       string `json:"listingID"`
	Urgency         string `json:"urgency"`
}

// SubmitContact handles POST /api/v1/contact.
func (h *EnquiriesHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "ContactEnquiry", domain.EnquiryGeneral)
}

// SubmitAppraisal handles POST /api/v1/contact/appraisal.
func (h *EnquiriesHandler) SubmitAppraisal(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "PropertyAppraisalEnquiry", domain.EnquiryAppraisal)
}

// SubmitMaintenance handles POST /api/v1/contact/maintenance.
func (h *EnquiriesHandler) SubmitMaintenance(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "MaintenanceRequestEnquiry", domain.EnquiryMaintenance)
}

func (h *EnquiriesHandler) submit(w http.ResponseWriter, r *http.Request, schemaType string, kind domain.EnquiryKind) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEnquiryBodyBytes))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	// Schema validation happens on the raw body so the contract, not the
	// Go struct, decides what is acceptable.
	if err := contracts.ValidateEnquiry(schemaType, "1.0.0", body); err != nil {
		logger.Warn("Enquiry rejected by schema validation", port.Fields{
			"kind":  kind,
			"error": err.Error(),
		})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req enquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	message := req.Message
	if req.Urgency != "" {
		message = "[" + req.Urgency + "] " + message
	}

	enquiry := domain.Enquiry{
		ID:              uuid.New(),
		Kind:            kind,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Message:         message,
		PropertyAddress: req.PropertyAddress,
		PropertyType:    req.PropertyType,
		ListingID:       req.ListingID,
		SubmittedAt:     time.Now().UTC(),
	}

	if err := h.submitEnquiryUC.Execute(r.Context(), enquiry); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "failed to submit enquiry")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"id": enquiry.ID.String(),
	})
}
