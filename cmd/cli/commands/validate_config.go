package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// ValidateConfigCmd creates the validate-config command: the configuration
// has already been loaded and validated by the root command at this point,
// so the command just prints the resolved tables.
func ValidateConfigCmd(app **AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-config",
		Short: "Validate the configuration and print the resolved award tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			cfg := a.Cfg

			fmt.Println("Configuration OK")

			levels := make([]int, 0, len(cfg.Award.LevelMultipliers))
			for level := range cfg.Award.LevelMultipliers {
				levels = append(levels, level)
			}
			sort.Ints(levels)
			fmt.Println("Level multipliers:")
			for _, level := range levels {
				fmt.Printf("  level %d: x%.3f\n", level, cfg.Award.LevelMultipliers[level])
			}

			names := make([]string, 0, len(cfg.Award.PenaltyMultipliers))
			for name := range cfg.Award.PenaltyMultipliers {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Println("Penalty multipliers:")
			for _, name := range names {
				fmt.Printf("  %-16s x%.3f\n", name, cfg.Award.PenaltyMultipliers[name])
			}

			fmt.Printf("Overtime: threshold %.1fh, first tier %.1fh x%.2f, then x%.2f\n",
				cfg.Award.OvertimeThresholdHours, cfg.Award.OvertimeFirstTierHours,
				cfg.Award.OvertimeFirstTierMultiplier, cfg.Award.OvertimeSecondTierMultiplier)
			fmt.Printf("Minimum break: %.1fh\n", cfg.Award.MinBreakHours)

			w := cfg.Matching.Weights
			fmt.Printf("Scoring weights: certification %.2f, training %.2f, experience %.2f, distance %.2f, cost %.2f\n",
				w.Certification, w.Training, w.Experience, w.Distance, w.Cost)
			fmt.Printf("Max distance: %.0fkm, experience ceiling: %.0fh, cert expiry warning: %dd\n",
				cfg.Matching.MaxDistanceKm, cfg.Matching.ExperienceCeilingHours,
				cfg.Matching.CertExpiryWarningDays)

			return nil
		},
	}
}
