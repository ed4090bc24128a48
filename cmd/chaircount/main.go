package main

import (
	"os"

	"github.com/iNinad/chair-counting-tool/pkg/floorplan"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaircount",
		Short: "Chair survey tool for legacy apartment floor plans",
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(roomsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	var (
		sortOrder string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [plan-or-project]",
		Short: "Count chairs per room and for the whole apartment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], sortOrder, cmd.Flags().Changed("sort"), asJSON)
		},
	}

	cmd.Flags().StringVar(&sortOrder, "sort", floorplan.SortPlan, `room order in the report: "plan" or "name"`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the survey as JSON instead of the text report")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan-or-project]",
		Short: "Check a floor plan's room structure without printing the survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func roomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rooms [plan-or-project]",
		Short: "List the room sections found in a floor plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRooms(args[0])
		},
	}
}
