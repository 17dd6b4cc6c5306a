package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"smartconstruction/estimate"
	"smartconstruction/metrics"
	"smartconstruction/services"
)

// apiError is the JSON body of a rejected estimate request.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const codeInvalidRequest = "invalid_request"

func estimateErrorResponse(e *core.RequestEvent, err error) error {
	code := estimate.ErrorCode(err)
	if code == "" {
		code = codeInvalidRequest
	}
	return e.JSON(http.StatusUnprocessableEntity, apiError{Error: code, Message: err.Error()})
}

// HandleEstimateRoomAPI estimates a single room posted as JSON.
func HandleEstimateRoomAPI(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var spec estimate.RoomSpec
		if err := e.BindBody(&spec); err != nil {
			return e.JSON(http.StatusUnprocessableEntity, apiError{Error: codeInvalidRequest, Message: "Invalid JSON body"})
		}

		b, err := estimate.EstimateRoomCost(spec, s.Rates)
		s.Metrics.ObserveRoomEstimates(metrics.OutcomeFor(err), 1)
		if err != nil {
			GetLogger(e.Request).Debug("api_estimate: room rejected", zap.Error(err))
			return estimateErrorResponse(e, err)
		}
		return e.JSON(http.StatusOK, b)
	}
}

// HandleEstimateQuotationAPI estimates a whole quotation posted as JSON.
func HandleEstimateQuotationAPI(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var q services.Quotation
		if err := e.BindBody(&q); err != nil {
			return e.JSON(http.StatusUnprocessableEntity, apiError{Error: codeInvalidRequest, Message: "Invalid JSON body"})
		}

		summary, err := s.summarize(q)
		if err != nil {
			return estimateErrorResponse(e, err)
		}
		return e.JSON(http.StatusOK, summary.Summary)
	}
}
