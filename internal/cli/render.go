package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

const dateLayout = "2006-01-02"

var (
	positive = color.New(color.FgGreen, color.Bold).SprintFunc()
	negative = color.New(color.FgRed, color.Bold).SprintFunc()
)

// formatNet colours a net weight green when stock grew and red when it shrank.
func formatNet(net decimal.Decimal) string {
	if net.IsNegative() {
		return negative(net.String())
	}
	return positive(net.String())
}

// RenderSummary renders the totals and purchased weight per coffee type.
func RenderSummary(title string, s model.Summary) string {
	tableData := pterm.TableData{{"Coffee type", "Purchased weight"}}
	for _, ct := range model.CoffeeTypes {
		tableData = append(tableData, []string{string(ct), s.ByCoffeeType[ct].String()})
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData).
		Srender()
	if err != nil {
		table = fmt.Sprintf("failed to render table: %v", err)
	}

	return fmt.Sprintf("%s\nTotal purchased: %s\nTotal sold:      %s\nNet weight:      %s\n%s",
		pterm.DefaultSection.Sprint(title),
		s.TotalPurchased.String(),
		s.TotalSold.String(),
		formatNet(s.NetWeight),
		table,
	)
}

// RenderWeek renders a single week-of-month bucket.
func RenderWeek(w model.WeekSummary) string {
	title := fmt.Sprintf("%04d-%02d week %d (%s to %s, %d records)",
		w.Year, w.Month, w.Week,
		w.Range.Start.Format(dateLayout), w.Range.End.Format(dateLayout),
		w.RecordCount,
	)
	return RenderSummary(title, w.Summary)
}

// RenderMonth renders one row per week bucket of a month.
func RenderMonth(weeks []model.WeekSummary) string {
	tableData := pterm.TableData{{"Week", "From", "To", "Records", "Purchased", "Sold", "Net weight"}}
	for _, w := range weeks {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", w.Week),
			w.Range.Start.Format(dateLayout),
			w.Range.End.Format(dateLayout),
			fmt.Sprintf("%d", w.RecordCount),
			w.Summary.TotalPurchased.String(),
			w.Summary.TotalSold.String(),
			formatNet(w.Summary.NetWeight),
		})
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData).
		Srender()
	if err != nil {
		return fmt.Sprintf("failed to render table: %v", err)
	}
	return table
}
