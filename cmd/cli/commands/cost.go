package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/careloop/rosterengine/pkg/core/award"
)

// CostCmd creates the cost command: price a single shift from flags
func CostCmd(app **AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Price a shift under the award tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app

			rate, _ := cmd.Flags().GetFloat64("rate")
			level, _ := cmd.Flags().GetInt("level")
			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")
			sleepover, _ := cmd.Flags().GetBool("sleepover")
			holiday, _ := cmd.Flags().GetString("holiday")
			previousStr, _ := cmd.Flags().GetString("previous-end")
			budget, _ := cmd.Flags().GetFloat64("budget")

			start, err := time.Parse(time.RFC3339, startStr)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			end, err := time.Parse(time.RFC3339, endStr)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			req := award.ShiftRequest{
				BaseHourlyRate: rate,
				WorkerLevel:    level,
				Start:          start,
				End:            end,
				IsSleepover:    sleepover,
				PublicHoliday:  holiday,
			}
			if previousStr != "" {
				prev, err := time.Parse(time.RFC3339, previousStr)
				if err != nil {
					return fmt.Errorf("invalid --previous-end: %w", err)
				}
				req.PreviousShiftEnd = &prev
			}
			if cmd.Flags().Changed("budget") {
				req.BudgetLimit = &budget
			}

			calendar, err := a.Cfg.HolidayCalendar()
			if err != nil {
				return err
			}

			breakdown, err := award.Calculate(req, a.Cfg.AwardConfig(), calendar)
			if err != nil {
				return err
			}

			printBreakdown(breakdown)
			return nil
		},
	}

	cmd.Flags().Float64("rate", 0, "Base hourly rate")
	cmd.Flags().Int("level", 1, "Worker classification level")
	cmd.Flags().String("start", "", "Shift start (RFC3339)")
	cmd.Flags().String("end", "", "Shift end (RFC3339)")
	cmd.Flags().Bool("sleepover", false, "Sleepover shift")
	cmd.Flags().String("holiday", "", "Public holiday name, forces the holiday loading")
	cmd.Flags().String("previous-end", "", "Previous shift end (RFC3339), enables break check")
	cmd.Flags().Float64("budget", 0, "Budget limit for advisory warning")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func printBreakdown(b *award.CostBreakdown) {
	fmt.Printf("Total hours:    %.2f (ordinary %.2f, overtime %.2f)\n",
		b.TotalHours, b.OrdinaryHours, b.OvertimeHours)
	fmt.Printf("Shift type:     %s\n", b.ShiftType)
	for _, line := range b.Breakdown {
		label := string(line.Type)
		if line.OvertimeTier != "" {
			label += " (" + line.OvertimeTier + ")"
		}
		fmt.Printf("  %-32s %6.2fh  x%.3f  $%.2f\n", label, line.Hours, line.Multiplier, line.Cost)
	}
	fmt.Printf("Total cost:     $%.2f\n", b.TotalCost)
	if b.BreakCompliance != nil {
		fmt.Printf("Break:          %s\n", b.BreakCompliance.Message)
	}
	for _, w := range b.Warnings {
		fmt.Printf("Warning:        %s\n", w)
	}
}
