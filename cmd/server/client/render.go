package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgGreen)
)

func renderDatasheets(w io.Writer, faction string, units []wh40k.UnitDatasheet) {
	titleColor.Fprintf(w, "%s datasheets (%d)\n", faction, len(units))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Models", "Points", "Keywords"}),
	)
	for _, u := range units {
		comp := u.UnitComposition
		models := fmt.Sprintf("%d", comp.MinModels)
		if !comp.FixedSize() {
			models = fmt.Sprintf("%d-%d", comp.MinModels, comp.MaxModels)
		}
		points := fmt.Sprintf("%d", comp.PointsPerUnit)
		if comp.PointsPerAdditionalModel != nil && comp.AdditionalModelMin != nil {
			points = fmt.Sprintf("%d (+%d over %d)", comp.PointsPerUnit, *comp.PointsPerAdditionalModel, *comp.AdditionalModelMin)
		}
		_ = table.Append([]string{u.ID, u.Name, models, points, strings.Join(u.Keywords, ", ")}) // nolint:errcheck // in-memory table
	}
	_ = table.Render() // nolint:errcheck // in-memory table
}

func renderDetachments(w io.Writer, detachments []wh40k.Detachment) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Rule", "Enhancements"}),
	)
	for _, d := range detachments {
		names := make([]string, 0, len(d.Enhancements))
		for _, e := range d.Enhancements {
			names = append(names, fmt.Sprintf("%s (%dpts)", e.Name, e.Cost))
		}
		_ = table.Append([]string{d.ID, d.Name, d.DetachmentRule.Name, strings.Join(names, ", ")}) // nolint:errcheck // in-memory table
	}
	_ = table.Render() // nolint:errcheck // in-memory table
}

func renderArmies(w io.Writer, armies []armySummary) {
	if len(armies) == 0 {
		fmt.Fprintln(w, "No armies yet.")
		return
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Detachment", "Points", "Units", "Updated"}),
	)
	for _, a := range armies {
		detachment := "-"
		if a.DetachmentID != nil {
			detachment = *a.DetachmentID
		}
		_ = table.Append([]string{ // nolint:errcheck // in-memory table
			a.ID,
			a.Name,
			detachment,
			fmt.Sprintf("%d/%d", a.TotalPoints, a.PointsLimit),
			fmt.Sprintf("%d", a.UnitCount),
			time.UnixMilli(a.UpdatedAt).UTC().Format(time.RFC3339),
		})
	}
	_ = table.Render() // nolint:errcheck // in-memory table
}

func renderArmy(w io.Writer, env *armyEnvelope) {
	army := env.Army

	detachment := "None"
	if army.DetachmentID != nil {
		detachment = *army.DetachmentID
	}

	titleColor.Fprintf(w, "%s (%s)\n", army.Name, army.ID)
	fmt.Fprintf(w, "Detachment: %s\n", detachment)
	fmt.Fprintf(w, "Points: %d/%d\n\n", env.TotalPoints, army.PointsLimit)

	if len(army.Units) > 0 {
		table := tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"Instance", "Datasheet", "Name", "Models", "Points", "Enhancement", "Wargear"}),
		)
		for _, u := range army.Units {
			enhancement := "-"
			if u.EnhancementID != nil {
				enhancement = *u.EnhancementID
			}
			wargear := make([]string, 0, len(u.Wargear))
			for _, sel := range u.Wargear {
				wargear = append(wargear, sel.OptionID+"="+sel.SelectedChoiceID)
			}
			_ = table.Append([]string{ // nolint:errcheck // in-memory table
				u.InstanceID,
				u.DatasheetID,
				u.CustomName,
				fmt.Sprintf("%d", u.ModelCount),
				fmt.Sprintf("%d", u.ComputedPoints),
				enhancement,
				strings.Join(wargear, ", "),
			})
		}
		_ = table.Render() // nolint:errcheck // in-memory table
		fmt.Fprintln(w)
	}

	renderValidation(w, env.Validation)
}

func renderValidation(w io.Writer, results []wh40k.ValidationResult) {
	if len(results) == 0 {
		infoColor.Fprintln(w, "✓ Army is legal")
		return
	}

	for _, r := range results {
		switch r.Severity {
		case wh40k.SeverityError:
			errorColor.Fprintf(w, "✖ %s\n", r.Message)
		case wh40k.SeverityWarning:
			warningColor.Fprintf(w, "! %s\n", r.Message)
		default:
			infoColor.Fprintf(w, "i %s\n", r.Message)
		}
	}
}
