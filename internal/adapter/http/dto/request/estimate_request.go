package request

import (
	"errors"
	"strings"

	"electripro/internal/domain/draft"
	"electripro/internal/domain/entities"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency code")
)

type MaterialLineRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

type LaborLineRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourly_rate"`
}

// EstimateRequest mirrors the editor form: scalar fields plus the material
// and labor line collections. Line totals are never accepted from the
// client; they are derived server-side when the draft is built.
type EstimateRequest struct {
	ProjectTitle  string                `json:"project_title"`
	ClientName    string                `json:"client_name"`
	ClientAddress string                `json:"client_address"`
	Brand         string                `json:"brand"`
	CurrencyCode  string                `json:"currency_code"`
	TaxRate       float64               `json:"tax_rate"`
	Notes         string                `json:"notes"`
	Materials     []MaterialLineRequest `json:"materials"`
	Labor         []LaborLineRequest    `json:"labor"`
}

// ToDraft translates the payload into a working draft. Numeric fields are
// normalized (negative/NaN collapse to 0) and line totals derived by the
// draft constructors. An empty currency code means the default currency;
// an unknown one is rejected.
func (r EstimateRequest) ToDraft() (*draft.Draft, error) {
	d := draft.New()
	d.ProjectTitle = strings.TrimSpace(r.ProjectTitle)
	d.ClientName = strings.TrimSpace(r.ClientName)
	d.ClientAddress = strings.TrimSpace(r.ClientAddress)
	d.Brand = strings.TrimSpace(r.Brand)
	d.Notes = r.Notes

	if code := strings.TrimSpace(r.CurrencyCode); code != "" {
		c, ok := entities.CurrencyByCode(code)
		if !ok {
			return nil, ErrUnknownCurrency
		}
		d.Currency = c
	}

	d.Materials = make([]entities.MaterialLine, 0, len(r.Materials))
	for _, m := range r.Materials {
		d.Materials = append(d.Materials, draft.NewMaterialLine(strings.TrimSpace(m.ID), m.Name, m.Brand, m.Quantity, m.UnitCost))
	}
	d.Labor = make([]entities.LaborLine, 0, len(r.Labor))
	for _, l := range r.Labor {
		d.Labor = append(d.Labor, draft.NewLaborLine(strings.TrimSpace(l.ID), l.Description, l.Hours, l.HourlyRate))
	}

	d.SetTaxRate(r.TaxRate)
	return d, nil
}
