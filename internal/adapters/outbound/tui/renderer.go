package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/rentacar/rentacar/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Width(56)

	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	labelStyle  = lipgloss.NewStyle().Foreground(dim).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(fg)
	amountStyle = lipgloss.NewStyle().Bold(true).Foreground(success)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
)

// RenderReceipt renders a rental transaction as a boxed receipt.
func RenderReceipt(tx *domain.Transaction) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("rentacar") + "\n")
	b.WriteString(dimStyle.Render("Rental receipt") + "\n\n")
	row(&b, "Customer", fmt.Sprintf("%s (%d)", tx.Customer.Name, tx.Customer.Age))
	row(&b, "Car", fmt.Sprintf("%s · %d", tx.Car.Name, tx.Car.ReleaseYear))
	row(&b, "Due date", tx.DueDate)
	b.WriteString(labelStyle.Render("Amount") + amountStyle.Render(tx.Amount) + "\n")
	b.WriteString("\n" + faintStyle.Render(tx.ID))

	return boxStyle.Render(b.String()) + "\n"
}

// RenderQuote renders a price breakdown.
func RenderQuote(q *domain.Quote) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("rentacar") + "\n")
	b.WriteString(dimStyle.Render("Price quote") + "\n\n")
	row(&b, "Customer", fmt.Sprintf("%s (%d)", q.Customer.Name, q.Customer.Age))
	row(&b, "Category", HumanizeName(q.Category.Name))
	row(&b, "Daily rate", q.Category.Price.StringFixed(2))
	row(&b, "Days", fmt.Sprintf("%d", q.Days))
	row(&b, "Multiplier", q.Multiplier.String())
	b.WriteString(labelStyle.Render("Total") + amountStyle.Render(q.Amount) + "\n")

	return boxStyle.Render(b.String()) + "\n"
}

// RenderHistory lists previous rentals, one per line.
func RenderHistory(entries []domain.RentalEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No rental history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Rental History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	for _, e := range entries {
		rev := e.DataRevision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if rev == "" {
			rev = "·······"
		}
		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(rev),
			padRight(e.CustomerID, 10),
			padRight(e.CarID, 6),
			amountStyle.Render(e.Amount),
			dimStyle.Render("até "+e.DueDate),
		)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderTaxTable lists the age brackets in lookup order.
func RenderTaxTable(table domain.TaxTable) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Tax Table") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 30)) + "\n")
	for _, br := range table {
		fmt.Fprintf(&b, "  %3d – %-3d  ×%s\n", br.From, br.To, br.Then.String())
	}
	return b.String()
}

// HumanizeName splits a CamelCase category name into words:
// "SUVPremium" becomes "SUV Premium". Names with spaces are kept.
func HumanizeName(name string) string {
	if name == "" || strings.ContainsAny(name, " \t") {
		return name
	}
	return strings.Join(camelcase.Split(name), " ")
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
