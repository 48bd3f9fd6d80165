package draft

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"electripro/internal/domain/entities"
)

// DefaultHourlyRate is the rate pre-filled on a freshly added labor line.
const DefaultHourlyRate = 65

// sanitizeNumber normalizes malformed numeric input to zero. NaN, infinities
// and negative values all collapse to 0 so a bad field can never poison a
// derived total.
func sanitizeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// lineTotal derives quantity*price without binary-float drift.
func lineTotal(quantity, price float64) float64 {
	q := decimal.NewFromFloat(sanitizeNumber(quantity))
	p := decimal.NewFromFloat(sanitizeNumber(price))
	return q.Mul(p).InexactFloat64()
}

// NewMaterialLine builds a material line from raw field values, assigning a
// fresh id when none is given and deriving the total.
func NewMaterialLine(id, name, brand string, quantity, unitCost float64) entities.MaterialLine {
	if id == "" {
		id = uuid.NewString()
	}
	quantity = sanitizeNumber(quantity)
	unitCost = sanitizeNumber(unitCost)
	return entities.MaterialLine{
		ID:       id,
		Name:     name,
		Brand:    brand,
		Quantity: quantity,
		UnitCost: unitCost,
		Total:    lineTotal(quantity, unitCost),
	}
}

// NewLaborLine builds a labor line from raw field values.
func NewLaborLine(id, description string, hours, hourlyRate float64) entities.LaborLine {
	if id == "" {
		id = uuid.NewString()
	}
	hours = sanitizeNumber(hours)
	hourlyRate = sanitizeNumber(hourlyRate)
	return entities.LaborLine{
		ID:          id,
		Description: description,
		Hours:       hours,
		HourlyRate:  hourlyRate,
		Total:       lineTotal(hours, hourlyRate),
	}
}

// AddMaterial appends an empty material line (quantity 1, unit cost 0) and
// returns the new collection. The input slice is not modified.
func AddMaterial(materials []entities.MaterialLine) []entities.MaterialLine {
	out := cloneMaterials(materials)
	return append(out, NewMaterialLine("", "", "", 1, 0))
}

// SetMaterialName replaces the name on the matching line. Unknown ids are a
// silent no-op.
func SetMaterialName(materials []entities.MaterialLine, id, name string) []entities.MaterialLine {
	return updateMaterial(materials, id, func(m *entities.MaterialLine) {
		m.Name = name
	})
}

// SetMaterialBrand replaces the brand on the matching line.
func SetMaterialBrand(materials []entities.MaterialLine, id, brand string) []entities.MaterialLine {
	return updateMaterial(materials, id, func(m *entities.MaterialLine) {
		m.Brand = brand
	})
}

// SetMaterialQuantity replaces the quantity and recomputes the line total.
func SetMaterialQuantity(materials []entities.MaterialLine, id string, quantity float64) []entities.MaterialLine {
	return updateMaterial(materials, id, func(m *entities.MaterialLine) {
		m.Quantity = sanitizeNumber(quantity)
		m.Total = lineTotal(m.Quantity, m.UnitCost)
	})
}

// SetMaterialUnitCost replaces the unit cost and recomputes the line total.
func SetMaterialUnitCost(materials []entities.MaterialLine, id string, unitCost float64) []entities.MaterialLine {
	return updateMaterial(materials, id, func(m *entities.MaterialLine) {
		m.UnitCost = sanitizeNumber(unitCost)
		m.Total = lineTotal(m.Quantity, m.UnitCost)
	})
}

// RemoveMaterial filters out the matching line. Removing an unknown id leaves
// the collection unchanged.
func RemoveMaterial(materials []entities.MaterialLine, id string) []entities.MaterialLine {
	out := make([]entities.MaterialLine, 0, len(materials))
	for _, m := range materials {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// AddLabor appends a labor line pre-filled with one hour at the default rate.
func AddLabor(labor []entities.LaborLine) []entities.LaborLine {
	out := cloneLabor(labor)
	return append(out, NewLaborLine("", "", 1, DefaultHourlyRate))
}

// SetLaborDescription replaces the description on the matching line.
func SetLaborDescription(labor []entities.LaborLine, id, description string) []entities.LaborLine {
	return updateLabor(labor, id, func(l *entities.LaborLine) {
		l.Description = description
	})
}

// SetLaborHours replaces the hours and recomputes the line total.
func SetLaborHours(labor []entities.LaborLine, id string, hours float64) []entities.LaborLine {
	return updateLabor(labor, id, func(l *entities.LaborLine) {
		l.Hours = sanitizeNumber(hours)
		l.Total = lineTotal(l.Hours, l.HourlyRate)
	})
}

// SetLaborHourlyRate replaces the hourly rate and recomputes the line total.
func SetLaborHourlyRate(labor []entities.LaborLine, id string, hourlyRate float64) []entities.LaborLine {
	return updateLabor(labor, id, func(l *entities.LaborLine) {
		l.HourlyRate = sanitizeNumber(hourlyRate)
		l.Total = lineTotal(l.Hours, l.HourlyRate)
	})
}

// RemoveLabor filters out the matching line, idempotent like RemoveMaterial.
func RemoveLabor(labor []entities.LaborLine, id string) []entities.LaborLine {
	out := make([]entities.LaborLine, 0, len(labor))
	for _, l := range labor {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

func updateMaterial(materials []entities.MaterialLine, id string, apply func(*entities.MaterialLine)) []entities.MaterialLine {
	out := cloneMaterials(materials)
	for i := range out {
		if out[i].ID == id {
			apply(&out[i])
			break
		}
	}
	return out
}

func updateLabor(labor []entities.LaborLine, id string, apply func(*entities.LaborLine)) []entities.LaborLine {
	out := cloneLabor(labor)
	for i := range out {
		if out[i].ID == id {
			apply(&out[i])
			break
		}
	}
	return out
}

func cloneMaterials(materials []entities.MaterialLine) []entities.MaterialLine {
	out := make([]entities.MaterialLine, len(materials))
	copy(out, materials)
	return out
}

func cloneLabor(labor []entities.LaborLine) []entities.LaborLine {
	out := make([]entities.LaborLine, len(labor))
	copy(out, labor)
	return out
}
