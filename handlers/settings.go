package handlers

import (
	"time"

	"go.uber.org/zap"

	"smartconstruction/estimate"
	"smartconstruction/metrics"
	"smartconstruction/services"
	"smartconstruction/templates"
)

// Settings carries the process-wide rate card and quotation defaults into
// the handlers. It is built once at startup and never mutated.
type Settings struct {
	Rates      estimate.MaterialConstants
	Labour     services.Labour
	FixedCosts services.FixedCosts
	Metrics    *metrics.Metrics
	Now        func() time.Time
}

// DefaultSettings returns the reference rate card and defaults without metrics.
func DefaultSettings() Settings {
	return Settings{
		Rates:      estimate.DefaultMaterialConstants(),
		Labour:     services.DefaultLabour(),
		FixedCosts: services.DefaultFixedCosts(),
		Now:        time.Now,
	}
}

func (s Settings) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// newQuotation starts a quotation with a ground floor holding one living room.
func (s Settings) newQuotation() services.Quotation {
	q := services.NewQuotation(s.Labour, s.FixedCosts).AddFloor(services.FloorPresets[0])
	q, _ = q.AddRoom(q.Floors[0].ID, services.RoomTypeOptions[0])
	return q
}

// summarize estimates every room of q and prepares the summary panel.
func (s Settings) summarize(q services.Quotation) (templates.SummaryData, error) {
	sum, err := services.CalcQuotationSummary(q, s.Rates)
	if err != nil {
		s.Metrics.ObserveRoomEstimates(metrics.OutcomeFor(err), 1)
		zap.L().Debug("quotation: estimate failed", zap.Error(err))
		return templates.SummaryData{}, err
	}
	s.Metrics.ObserveRoomEstimates(metrics.OutcomeOK, q.RoomCount())
	return templates.SummaryData{
		Summary:       sum,
		MaterialLines: services.MaterialLinesFromSummary(sum, s.Rates.BrickUnitPrice, s.Rates.TileUnitPrice),
	}, nil
}

// pageData assembles the builder page for q.
func (s Settings) pageData(q services.Quotation, number string) templates.QuotationPageData {
	data := templates.QuotationPageData{
		Quotation:       q,
		QuotationNumber: number,
		Errors:          make(map[string]string),
		RoomTypes:       services.RoomTypeOptions,
		FloorPresets:    services.FloorPresets,
		Materials:       estimate.WindowMaterials(),
	}
	if summary, err := s.summarize(q); err != nil {
		data.SummaryError = err.Error()
	} else {
		data.Summary = &summary
	}
	return data
}
