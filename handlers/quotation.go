package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"smartconstruction/services"
	"smartconstruction/templates"
)

// HandleQuotationPage renders the builder with a default ground floor and room.
func HandleQuotationPage(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := s.pageData(s.newQuotation(), services.GenerateQuotationNumber(s.now()))
		return templates.QuotationPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuotationBuilder applies one builder action to the posted quotation
// and re-renders the floors section.
func HandleQuotationBuilder(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q := parseQuotationForm(e.Request)
		q, err := applyBuilderAction(q, e.Request)
		if err != nil {
			GetLogger(e.Request).Info("quotation_builder: action rejected", zap.Error(err))
			return ErrorToast(e, http.StatusUnprocessableEntity, err.Error())
		}

		// Refresh the summary panel alongside the builder.
		e.Response.Header().Set("HX-Trigger-After-Swap", "quotationChanged")

		data := s.pageData(q, strings.TrimSpace(e.Request.FormValue("quotation_number")))
		return templates.QuotationBuilder(data).Render(e.Request.Context(), e.Response)
	}
}

func applyBuilderAction(q services.Quotation, r *http.Request) (services.Quotation, error) {
	floorID := r.FormValue("floor_id")
	switch action := r.FormValue("action"); action {
	case "add_floor":
		return q.AddFloor(r.FormValue("floor_name")), nil
	case "remove_floor":
		return q.RemoveFloor(floorID), nil
	case "toggle_floor":
		return q.ToggleFloor(floorID), nil
	case "add_room":
		roomType := strings.TrimSpace(r.FormValue("room_type"))
		if roomType == "" {
			roomType = services.RoomTypeOptions[0]
		}
		return q.AddRoom(floorID, roomType)
	case "remove_room":
		return q.RemoveRoom(floorID, r.FormValue("room_id")), nil
	case "update_room":
		return q.UpdateRoom(floorID, r.FormValue("room_id"), r.FormValue("field"), r.FormValue("value"))
	default:
		return q, fmt.Errorf("unknown builder action %q", action)
	}
}

// HandleQuotationSummary recomputes the cost summary for the posted quotation.
// Estimation failures are reported as an error toast and leave the current
// summary in place.
func HandleQuotationSummary(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q := parseQuotationForm(e.Request)
		summary, err := s.summarize(q)
		if err != nil {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Cannot estimate quotation: "+err.Error())
		}
		return templates.QuotationSummary(summary).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuotationCreate validates the project details and confirms the
// quotation. Nothing is stored.
func HandleQuotationCreate(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q := parseQuotationForm(e.Request)
		number := strings.TrimSpace(e.Request.FormValue("quotation_number"))
		if number == "" {
			number = services.GenerateQuotationNumber(s.now())
		}

		data := s.pageData(q, number)
		if errs := services.ValidateProjectDetails(q.Project); len(errs) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Errors = errs
			e.Response.WriteHeader(http.StatusUnprocessableEntity)
			return templates.QuotationPage(data).Render(e.Request.Context(), e.Response)
		}
		if data.Summary == nil {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Cannot estimate quotation: "+data.SummaryError)
		}

		GetLogger(e.Request).Info("quotation_create: quotation prepared",
			zap.String("number", number),
			zap.String("project", q.Project.Name),
			zap.Int("rooms", q.RoomCount()),
			zap.Float64("grand_total", data.Summary.Summary.GrandTotal),
		)
		SetToast(e, "success", "Project "+q.Project.Name+" created: "+services.FormatRupees(data.Summary.Summary.GrandTotal))
		return templates.QuotationPage(data).Render(e.Request.Context(), e.Response)
	}
}
