package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iNinad/chair-counting-tool/pkg/floorplan"
	"github.com/iNinad/chair-counting-tool/pkg/tally"
	"github.com/iNinad/chair-counting-tool/pkg/validation"
)

// loadPlan loads the argument as either a plan file or a project directory
// holding survey.yaml. The config is nil for plain plan files.
func loadPlan(path string) (*floorplan.Plan, *floorplan.ProjectConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading plan: %w", err)
	}
	if info.IsDir() {
		return floorplan.LoadProject(path)
	}
	plan, err := floorplan.Load(path)
	return plan, nil, err
}

func runAnalyze(path, sortOrder string, sortFlagSet, asJSON bool) error {
	plan, cfg, err := loadPlan(path)
	if err != nil {
		return err
	}

	// An explicit --sort wins over the project config.
	if !sortFlagSet && cfg != nil && cfg.Sort != "" {
		sortOrder = cfg.Sort
	}
	if sortOrder != floorplan.SortPlan && sortOrder != floorplan.SortName {
		return fmt.Errorf("unknown sort order %q (want %q or %q)", sortOrder, floorplan.SortPlan, floorplan.SortName)
	}

	survey := tally.Count(plan)
	report := validation.Inspect(plan, survey)

	if asJSON {
		output := map[string]any{
			"plan":       plan,
			"survey":     survey,
			"validation": report,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	printSurveyReport(os.Stdout, survey, sortOrder)

	if len(report.Errors) > 0 || len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(os.Stdout, report)
	}
	return nil
}

func runValidate(path string) error {
	plan, _, err := loadPlan(path)
	if err != nil {
		return err
	}

	survey := tally.Count(plan)
	report := validation.Inspect(plan, survey)

	printValidationReport(os.Stdout, report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runRooms(path string) error {
	plan, _, err := loadPlan(path)
	if err != nil {
		return err
	}

	printRoomList(os.Stdout, plan)
	return nil
}
