package export

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/rollup"
)

// WizardOptions is what the interactive export flow collects.
type WizardOptions struct {
	OutputPath string
	Depth      model.Level // deepest level to include
	AllColumns bool        // all columns vs the currently active groups
}

// isTerminal checks if stdin is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection.
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// RunWizard asks for export options and writes the CSV. The rows are the
// full collection; the chosen depth decides how far the export expands
// the hierarchy.
func RunWizard(rows []model.Row, groups *rollup.GroupSet) (string, error) {
	opts := WizardOptions{
		OutputPath: "storeboard-export.csv",
		Depth:      model.LevelChannel,
		AllColumns: true,
	}

	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file").
				Description("Path for the CSV export").
				Value(&opts.OutputPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output path cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[model.Level]().
				Title("Include levels down to").
				Options(
					huh.NewOption("Companies only", model.LevelCompany),
					huh.NewOption("Companies and brands", model.LevelBrand),
					huh.NewOption("Down to addresses", model.LevelAddress),
					huh.NewOption("Everything, including channels", model.LevelChannel),
				).
				Value(&opts.Depth),
			huh.NewConfirm().
				Title("Include all metric columns?").
				Description("No exports only the active column groups").
				Value(&opts.AllColumns).
				Affirmative("All columns").
				Negative("Active groups"),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	cols := model.Columns
	if !opts.AllColumns && groups != nil {
		cols = groups.VisibleColumns()
	}

	flat := FlattenToDepth(rows, opts.Depth)
	if err := WriteCSVFile(opts.OutputPath, flat, cols); err != nil {
		return "", err
	}
	return opts.OutputPath, nil
}

// FlattenToDepth flattens the collection with every row above the cutoff
// level expanded, so the export contains the hierarchy down to and
// including that level.
func FlattenToDepth(rows []model.Row, depth model.Level) []rollup.FlatRow {
	expanded := rollup.NewExpandState()
	for _, row := range rows {
		if row.Level.Rank() < depth.Rank() {
			expanded.Expand(row.ID)
		}
	}
	return rollup.Flatten(rows, expanded)
}
