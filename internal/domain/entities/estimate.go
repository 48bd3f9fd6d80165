package entities

import "time"

// EstimateStatus represents the lifecycle of a saved estimate.
//
// Domain notes:
//   - This service only ever assigns "draft"; the enum leaves room for a
//     send/approve workflow without one existing yet.

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
)

// MaterialLine is a single material entry on an estimate.
//
// Total is derived: Total == Quantity * UnitCost, recomputed whenever
// Quantity or UnitCost changes. It is never set directly.
type MaterialLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Total    float64 `json:"total"`
}

// LaborLine is a single labor entry on an estimate.
//
// Total is derived: Total == Hours * HourlyRate.
type LaborLine struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourly_rate"`
	Total       float64 `json:"total"`
}

// Totals is the aggregate cost breakdown derived from the line items.
//
// Invariants:
//   - MaterialsCost = sum of material line totals
//   - LaborCost     = sum of labor line totals
//   - Subtotal      = MaterialsCost + LaborCost
//   - TaxAmount     = Subtotal * TaxRate / 100
//   - GrandTotal    = Subtotal + TaxAmount
type Totals struct {
	MaterialsCost float64 `json:"materials_cost"`
	LaborCost     float64 `json:"labor_cost"`
	Subtotal      float64 `json:"subtotal"`
	TaxAmount     float64 `json:"tax_amount"`
	GrandTotal    float64 `json:"grand_total"`
}

// Estimate is a saved estimate snapshot.
//
// Storage model (DynamoDB backend):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// Snapshot semantics:
//   - Totals are captured at save time, never recomputed lazily on read.
//   - Materials and Labor keep insertion order; order is significant for
//     display and printing.
//   - Date is the issue date (yyyy-mm-dd) and is preserved across edits.
type Estimate struct {
	ID            string         `json:"id"`
	OwnerID       string         `json:"owner_id"`
	ProjectTitle  string         `json:"project_title"`
	ClientName    string         `json:"client_name"`
	ClientAddress string         `json:"client_address"`
	Brand         string         `json:"brand,omitempty"`
	Date          string         `json:"date"`
	Materials     []MaterialLine `json:"materials"`
	Labor         []LaborLine    `json:"labor"`
	TaxRate       float64        `json:"tax_rate"`
	Notes         string         `json:"notes,omitempty"`
	Currency      Currency       `json:"currency"`
	Status        EstimateStatus `json:"status"`
	Totals        Totals         `json:"totals"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
