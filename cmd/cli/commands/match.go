package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careloop/rosterengine/pkg/core/matching"
	"github.com/careloop/rosterengine/pkg/db"
	"github.com/careloop/rosterengine/pkg/postgres"
)

// MatchCmd creates the match command: rank candidates for a shift described
// in a JSON request file. The candidate pool comes from the file, or from
// the platform's record store when --database is given.
func MatchCmd(app **AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank candidate workers for a shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app

			file, _ := cmd.Flags().GetString("file")
			connString, _ := cmd.Flags().GetString("database")
			includeExcluded, _ := cmd.Flags().GetBool("include-excluded")

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read request file: %w", err)
			}

			var req matching.MatchRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("failed to parse request file: %w", err)
			}
			req.IncludeExcluded = req.IncludeExcluded || includeExcluded

			if connString != "" {
				store, err := postgres.NewDB(a.Ctx, connString)
				if err != nil {
					return err
				}
				defer store.Close()

				workers, err := store.GetWorkers(a.Ctx)
				if err != nil {
					return err
				}
				req.Candidates = toProfiles(workers)
				a.Logger.Info("loaded candidate pool from record store",
					zap.Int("workers", len(workers)))
			}

			calendar, err := a.Cfg.HolidayCalendar()
			if err != nil {
				return err
			}

			result, err := matching.Match(req, a.Cfg.MatchingConfig(), calendar)
			if err != nil {
				return err
			}

			printResult(result)
			return nil
		},
	}

	cmd.Flags().String("file", "", "Path to a JSON match request")
	cmd.Flags().String("database", "", "Postgres connection string; overrides the file's candidate pool")
	cmd.Flags().Bool("include-excluded", false, "Report excluded workers with their reasons")
	cmd.MarkFlagRequired("file")

	return cmd
}

// toProfiles maps record-store workers onto engine candidate profiles
func toProfiles(workers []db.Worker) []matching.WorkerProfile {
	profiles := make([]matching.WorkerProfile, 0, len(workers))
	for _, w := range workers {
		p := matching.WorkerProfile{
			WorkerID:         w.ID,
			Name:             w.FullName,
			HourlyRate:       w.HourlyRate,
			WorkerLevel:      w.WorkerLevel,
			ExperienceHours:  w.ExperienceHours,
			LocationLat:      w.LocationLat,
			LocationLng:      w.LocationLng,
			Available:        w.Available,
			PreviousShiftEnd: w.PreviousShiftEnd,
		}
		for _, c := range w.Certifications {
			p.Certifications = append(p.Certifications, matching.CertificationRecord{
				CertificationID: c.CertificationID,
				Name:            c.Name,
				Expiry:          c.ExpiryDate,
			})
		}
		for _, t := range w.Trainings {
			p.Trainings = append(p.Trainings, matching.TrainingRecord{
				TrainingID: t.TrainingID,
				Name:       t.Name,
				Status:     matching.TrainingStatus(t.Status),
			})
		}
		profiles = append(profiles, p)
	}
	return profiles
}

func printResult(r *matching.MatchResult) {
	fmt.Printf("Shift %s: %d candidates, %d eligible\n",
		r.ShiftID, r.TotalCandidates, r.EligibleWorkers)
	for _, m := range r.RankedMatches {
		fmt.Printf("  #%d %-20s score %.3f  (cert %.2f, training %.2f, exp %.2f, dist %.2f, cost %.2f)  %.1fkm  $%.2f\n",
			m.Rank, m.WorkerID, m.TotalScore,
			m.CertificationScore, m.TrainingScore, m.ExperienceScore, m.DistanceScore, m.CostScore,
			m.EstimatedDistanceKm, m.EstimatedCost)
		for _, w := range m.ComplianceWarnings {
			fmt.Printf("      warning: %s\n", w)
		}
	}
	for _, e := range r.ExcludedWorkers {
		fmt.Printf("  excluded %-20s %v\n", e.WorkerID, e.Reasons)
	}
}
