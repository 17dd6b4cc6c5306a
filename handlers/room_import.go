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

const maxImportSize = 10 << 20

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleRoomTemplateDownload serves the Excel template for room import.
func HandleRoomTemplateDownload(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateRoomTemplate()
		if err != nil {
			GetLogger(e.Request).Error("room_template: failed to generate", zap.Error(err))
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}
		filename := fmt.Sprintf("Room_Import_Template_%d.xlsx", s.now().Year())
		return writeDownload(e, xlsxContentType, filename, xlsxBytes)
	}
}

// parseRoomUpload reads the uploaded room file from a multipart request.
func parseRoomUpload(e *core.RequestEvent) (*services.RoomImportResult, error) {
	if err := e.Request.ParseMultipartForm(maxImportSize); err != nil {
		return nil, fmt.Errorf("file too large or invalid form data")
	}
	file, header, err := e.Request.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("please select a .csv or .xlsx file to import")
	}
	defer file.Close()

	return services.ParseRoomFile(file, header.Filename)
}

// HandleRoomImport adds the rooms of an uploaded file to the posted quotation
// and re-renders the floors section. Invalid rows are skipped and reported in
// a toast.
func HandleRoomImport(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := parseRoomUpload(e)
		if err != nil {
			GetLogger(e.Request).Info("room_import: rejected", zap.Error(err))
			return ErrorToast(e, http.StatusUnprocessableEntity, "Import failed: "+err.Error())
		}

		q := parseQuotationForm(e.Request).MergeImportedFloors(result.Floors)
		GetLogger(e.Request).Info("room_import: imported",
			zap.String("file", result.FileName),
			zap.Int("rooms", result.RoomCount()),
			zap.Int("error_rows", result.ErrorRows),
			zap.Strings("ignored_columns", result.IgnoredColumns),
		)

		ignored := ""
		if len(result.IgnoredColumns) > 0 {
			ignored = "; ignored columns: " + strings.Join(result.IgnoredColumns, ", ")
		}

		switch {
		case result.ValidRows == 0:
			SetToast(e, "error", fmt.Sprintf("No rooms imported: %d rows have errors", result.ErrorRows))
		case result.ErrorRows > 0:
			first := result.Errors[0]
			SetToast(e, "warning", fmt.Sprintf("Imported %d rooms, skipped %d rows (row %d: %s)%s",
				result.ValidRows, result.ErrorRows, first.Row, first.Message, ignored))
		case ignored != "":
			SetToast(e, "warning", fmt.Sprintf("Imported %d rooms%s", result.ValidRows, ignored))
		default:
			SetToast(e, "success", fmt.Sprintf("Imported %d rooms", result.ValidRows))
		}
		// Refresh the summary panel alongside the builder.
		e.Response.Header().Set("HX-Trigger-After-Swap", "quotationChanged")

		data := s.pageData(q, strings.TrimSpace(e.Request.FormValue("quotation_number")))
		return templates.QuotationBuilder(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleRoomImportErrors downloads the row errors of an uploaded file as Excel.
func HandleRoomImportErrors(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := parseRoomUpload(e)
		if err != nil {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Import failed: "+err.Error())
		}
		if len(result.Errors) == 0 {
			SetToast(e, "info", "No errors found in "+result.FileName)
			return e.NoContent(http.StatusNoContent)
		}

		xlsxBytes, err := services.GenerateImportErrorReport(result.Errors)
		if err != nil {
			GetLogger(e.Request).Error("room_import_errors: failed to generate", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		filename := fmt.Sprintf("Room_Import_Errors_%s.xlsx", s.now().Format("2006-01-02"))
		return writeDownload(e, xlsxContentType, filename, xlsxBytes)
	}
}
