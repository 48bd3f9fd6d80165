// Package draft holds the working state of an estimate while it is being
// edited: the line-item collections, the scalar form fields and the derived
// totals. All mutating operations replace collections instead of editing
// them in place and recompute the totals synchronously, so the draft is
// never observed in a stale state.
package draft

import (
	"time"

	"github.com/google/uuid"

	"electripro/internal/domain/entities"
)

// DefaultTaxRate is the tax rate percentage pre-filled on new drafts.
const DefaultTaxRate = 8.5

// Draft is the single mutable piece of estimate state. One draft belongs to
// exactly one editing session; there is no concurrent writer.
type Draft struct {
	ProjectTitle  string
	ClientName    string
	ClientAddress string
	Brand         string
	Notes         string
	TaxRate       float64
	Currency      entities.Currency
	Materials     []entities.MaterialLine
	Labor         []entities.LaborLine
	Totals        entities.Totals
}

// New returns an empty draft with the form defaults.
func New() *Draft {
	return &Draft{
		TaxRate:  DefaultTaxRate,
		Currency: entities.DefaultCurrency(),
	}
}

// FromEstimate populates a draft from a saved snapshot. Totals are taken
// from the snapshot as-is; the first mutation recomputes them.
func FromEstimate(e entities.Estimate) *Draft {
	return &Draft{
		ProjectTitle:  e.ProjectTitle,
		ClientName:    e.ClientName,
		ClientAddress: e.ClientAddress,
		Brand:         e.Brand,
		Notes:         e.Notes,
		TaxRate:       e.TaxRate,
		Currency:      e.Currency,
		Materials:     cloneMaterials(e.Materials),
		Labor:         cloneLabor(e.Labor),
		Totals:        e.Totals,
	}
}

// AddMaterial appends an empty material line and returns its id.
func (d *Draft) AddMaterial() string {
	d.Materials = AddMaterial(d.Materials)
	d.recalculate()
	return d.Materials[len(d.Materials)-1].ID
}

func (d *Draft) SetMaterialName(id, name string) {
	d.Materials = SetMaterialName(d.Materials, id, name)
	d.recalculate()
}

func (d *Draft) SetMaterialBrand(id, brand string) {
	d.Materials = SetMaterialBrand(d.Materials, id, brand)
	d.recalculate()
}

func (d *Draft) SetMaterialQuantity(id string, quantity float64) {
	d.Materials = SetMaterialQuantity(d.Materials, id, quantity)
	d.recalculate()
}

func (d *Draft) SetMaterialUnitCost(id string, unitCost float64) {
	d.Materials = SetMaterialUnitCost(d.Materials, id, unitCost)
	d.recalculate()
}

func (d *Draft) RemoveMaterial(id string) {
	d.Materials = RemoveMaterial(d.Materials, id)
	d.recalculate()
}

// AddLabor appends a labor line with the one-hour default and returns its id.
func (d *Draft) AddLabor() string {
	d.Labor = AddLabor(d.Labor)
	d.recalculate()
	return d.Labor[len(d.Labor)-1].ID
}

func (d *Draft) SetLaborDescription(id, description string) {
	d.Labor = SetLaborDescription(d.Labor, id, description)
	d.recalculate()
}

func (d *Draft) SetLaborHours(id string, hours float64) {
	d.Labor = SetLaborHours(d.Labor, id, hours)
	d.recalculate()
}

func (d *Draft) SetLaborHourlyRate(id string, hourlyRate float64) {
	d.Labor = SetLaborHourlyRate(d.Labor, id, hourlyRate)
	d.recalculate()
}

func (d *Draft) RemoveLabor(id string) {
	d.Labor = RemoveLabor(d.Labor, id)
	d.recalculate()
}

// SetTaxRate clamps the rate to 0..MaxTaxRate and recomputes the totals.
func (d *Draft) SetTaxRate(rate float64) {
	d.TaxRate = clampTaxRate(rate)
	d.recalculate()
}

// SetCurrency switches the display currency. Unknown codes are ignored.
func (d *Draft) SetCurrency(code string) {
	if c, ok := entities.CurrencyByCode(code); ok {
		d.Currency = c
	}
}

func (d *Draft) recalculate() {
	d.Totals = CalculateTotals(d.Materials, d.Labor, d.TaxRate)
}

// Build assembles a complete estimate snapshot from the draft.
//
// The totals are recomputed immediately before assembly so the snapshot can
// never be stale relative to its line items. Editing an existing estimate
// preserves its id and issue date; new estimates get a fresh id and today's
// date. There is no partial result: Build always yields one internally
// consistent snapshot.
func (d *Draft) Build(existingID, existingDate string) entities.Estimate {
	d.recalculate()

	id := existingID
	if id == "" {
		id = uuid.NewString()
	}
	date := existingDate
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	currency := d.Currency
	if currency.Code == "" {
		currency = entities.DefaultCurrency()
	}

	return entities.Estimate{
		ID:            id,
		ProjectTitle:  d.ProjectTitle,
		ClientName:    d.ClientName,
		ClientAddress: d.ClientAddress,
		Brand:         d.Brand,
		Date:          date,
		Materials:     cloneMaterials(d.Materials),
		Labor:         cloneLabor(d.Labor),
		TaxRate:       clampTaxRate(d.TaxRate),
		Notes:         d.Notes,
		Currency:      currency,
		Status:        entities.EstimateStatusDraft,
		Totals:        d.Totals,
	}
}
