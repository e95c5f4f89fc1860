package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bibbank/loancalc/internal/application/dto"
	"github.com/bibbank/loancalc/internal/application/usecase"
	"github.com/bibbank/loancalc/internal/domain/model"
)

const maxBodyBytes = 1 << 20

const codeMalformedRequest = "MALFORMED_REQUEST"

// CalculatorHandler exposes the loan calculation use cases over HTTP.
type CalculatorHandler struct {
	calculateUC  *usecase.CalculateLoanUseCase
	penaltyUC    *usecase.CalculatePenaltyUseCase
	settlementUC *usecase.QuoteSettlementUseCase
	logger       *slog.Logger
}

// NewCalculatorHandler creates a handler with all use-case dependencies.
func NewCalculatorHandler(
	calculate *usecase.CalculateLoanUseCase,
	penalty *usecase.CalculatePenaltyUseCase,
	settlement *usecase.QuoteSettlementUseCase,
	logger *slog.Logger,
) *CalculatorHandler {
	return &CalculatorHandler{
		calculateUC:  calculate,
		penaltyUC:    penalty,
		settlementUC: settlement,
		logger:       logger,
	}
}

func (h *CalculatorHandler) calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateLoanRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.calculateUC.Execute(r.Context(), req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CalculatorHandler) calculatePenalty(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculatePenaltyRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.penaltyUC.Execute(r.Context(), req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CalculatorHandler) quoteSettlement(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteSettlementRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.settlementUC.Execute(r.Context(), req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

type errorBody struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, errorResponse{Error: body})
}

// decode reads a JSON body into v, answering 400 itself when it cannot.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, errorBody{
			Code:    codeMalformedRequest,
			Message: "request body must be a JSON object: " + err.Error(),
		})
		return false
	}
	return true
}

// writeFailure maps use case errors to HTTP responses.
func (h *CalculatorHandler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, errorBody{
			Code:    string(vErr.Code),
			Field:   vErr.Field,
			Message: vErr.Message,
		})
		return
	}
	h.logger.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, errorBody{
		Code:    "INTERNAL",
		Message: "internal server error",
	})
}
