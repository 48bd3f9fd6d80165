package response

import (
	"time"

	"electripro/internal/domain/entities"
	"electripro/internal/usecase"
)

type MaterialLineResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Total    float64 `json:"total"`
}

type LaborLineResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourly_rate"`
	Total       float64 `json:"total"`
}

type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type EstimateResponse struct {
	ID            string                 `json:"id"`
	ProjectTitle  string                 `json:"project_title"`
	ClientName    string                 `json:"client_name"`
	ClientAddress string                 `json:"client_address"`
	Brand         string                 `json:"brand,omitempty"`
	Date          string                 `json:"date"`
	Materials     []MaterialLineResponse `json:"materials"`
	Labor         []LaborLineResponse    `json:"labor"`
	TaxRate       float64                `json:"tax_rate"`
	Notes         string                 `json:"notes,omitempty"`
	Currency      CurrencyResponse       `json:"currency"`
	Status        string                 `json:"status"`
	MaterialsCost float64                `json:"materials_cost"`
	LaborCost     float64                `json:"labor_cost"`
	Subtotal      float64                `json:"subtotal"`
	TaxAmount     float64                `json:"tax_amount"`
	GrandTotal    float64                `json:"grand_total"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	materials := make([]MaterialLineResponse, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, MaterialLineResponse{
			ID:       m.ID,
			Name:     m.Name,
			Brand:    m.Brand,
			Quantity: m.Quantity,
			UnitCost: m.UnitCost,
			Total:    m.Total,
		})
	}
	labor := make([]LaborLineResponse, 0, len(e.Labor))
	for _, l := range e.Labor {
		labor = append(labor, LaborLineResponse{
			ID:          l.ID,
			Description: l.Description,
			Hours:       l.Hours,
			HourlyRate:  l.HourlyRate,
			Total:       l.Total,
		})
	}

	return EstimateResponse{
		ID:            e.ID,
		ProjectTitle:  e.ProjectTitle,
		ClientName:    e.ClientName,
		ClientAddress: e.ClientAddress,
		Brand:         e.Brand,
		Date:          e.Date,
		Materials:     materials,
		Labor:         labor,
		TaxRate:       e.TaxRate,
		Notes:         e.Notes,
		Currency:      CurrencyResponse{Code: e.Currency.Code, Symbol: e.Currency.Symbol, Name: e.Currency.Name},
		Status:        string(e.Status),
		MaterialsCost: e.Totals.MaterialsCost,
		LaborCost:     e.Totals.LaborCost,
		Subtotal:      e.Totals.Subtotal,
		TaxAmount:     e.Totals.TaxAmount,
		GrandTotal:    e.Totals.GrandTotal,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

type StatsResponse struct {
	Count        int     `json:"count"`
	TotalValue   float64 `json:"total_value"`
	AverageValue float64 `json:"average_value"`
}

func FromStats(s usecase.EstimateStats) StatsResponse {
	return StatsResponse{Count: s.Count, TotalValue: s.TotalValue, AverageValue: s.AverageValue}
}
