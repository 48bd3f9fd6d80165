// Package document renders a saved estimate into printable and shareable
// text. Rendering is a pure projection over the snapshot: nothing here
// recomputes totals or mutates the estimate.
package document

import (
	"fmt"
	"strings"

	"electripro/internal/domain/entities"
)

const companyName = "AG Electrical Services"

// money formats an amount with the estimate's currency symbol. Two-decimal
// rounding happens only here, at the display boundary; stored values keep
// full precision.
func money(c entities.Currency, amount float64) string {
	return fmt.Sprintf("%s%.2f", c.Symbol, amount)
}

// Render produces the printable document for an estimate. Empty material or
// labor sections are omitted, matching the on-screen print view.
func Render(e entities.Estimate) string {
	var b strings.Builder
	c := e.Currency

	fmt.Fprintf(&b, "%s - ESTIMATE\n", strings.ToUpper(companyName))
	fmt.Fprintf(&b, "Date: %s\n", e.Date)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Project: %s\n", e.ProjectTitle)
	fmt.Fprintf(&b, "Client:  %s\n", e.ClientName)
	fmt.Fprintf(&b, "Address: %s\n", e.ClientAddress)
	if e.Brand != "" {
		fmt.Fprintf(&b, "Brand:   %s\n", e.Brand)
	}
	fmt.Fprintf(&b, "Currency: %s\n", c.Name)
	fmt.Fprintf(&b, "Status:   %s\n", e.Status)

	if len(e.Materials) > 0 {
		b.WriteString("\nMaterials\n")
		for _, m := range e.Materials {
			fmt.Fprintf(&b, "  %-30s %8.2f x %10s = %12s\n",
				m.Name, m.Quantity, money(c, m.UnitCost), money(c, m.Total))
		}
		fmt.Fprintf(&b, "  Materials Subtotal: %s\n", money(c, e.Totals.MaterialsCost))
	}

	if len(e.Labor) > 0 {
		b.WriteString("\nLabor\n")
		for _, l := range e.Labor {
			fmt.Fprintf(&b, "  %-30s %6.2f h x %10s = %12s\n",
				l.Description, l.Hours, money(c, l.HourlyRate), money(c, l.Total))
		}
		fmt.Fprintf(&b, "  Labor Subtotal: %s\n", money(c, e.Totals.LaborCost))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal:    %s\n", money(c, e.Totals.Subtotal))
	fmt.Fprintf(&b, "Tax (%.1f%%): %s\n", e.TaxRate, money(c, e.Totals.TaxAmount))
	fmt.Fprintf(&b, "GRAND TOTAL: %s\n", money(c, e.Totals.GrandTotal))

	if e.Notes != "" {
		fmt.Fprintf(&b, "\nNotes\n%s\n", e.Notes)
	}

	fmt.Fprintf(&b, "\nThank you for choosing %s\n", companyName)
	b.WriteString("This estimate is valid for 30 days from the date issued\n")
	return b.String()
}

// ShareMessage produces a short summary suitable for a messaging app.
func ShareMessage(e entities.Estimate) string {
	c := e.Currency
	return fmt.Sprintf(
		"Estimate for %s (%s): materials %s, labor %s, grand total %s. Issued %s by %s.",
		e.ProjectTitle, e.ClientName,
		money(c, e.Totals.MaterialsCost),
		money(c, e.Totals.LaborCost),
		money(c, e.Totals.GrandTotal),
		e.Date, companyName,
	)
}
