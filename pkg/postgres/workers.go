package postgres

import (
	"context"
	"fmt"

	"github.com/careloop/rosterengine/pkg/db"
)

// GetWorkers retrieves all worker records with their certifications and
// trainings attached.
func (d *DB) GetWorkers(ctx context.Context) ([]db.Worker, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, full_name, hourly_rate, worker_level, experience_hours,
		       location_lat, location_lng, available, previous_shift_end
		FROM worker
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []db.Worker
	index := make(map[string]int)
	for rows.Next() {
		var w db.Worker
		if err := rows.Scan(&w.ID, &w.FullName, &w.HourlyRate, &w.WorkerLevel,
			&w.ExperienceHours, &w.LocationLat, &w.LocationLng, &w.Available,
			&w.PreviousShiftEnd); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		index[w.ID] = len(workers)
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}

	if err := d.attachCertifications(ctx, workers, index); err != nil {
		return nil, err
	}
	if err := d.attachTrainings(ctx, workers, index); err != nil {
		return nil, err
	}

	return workers, nil
}

func (d *DB) attachCertifications(ctx context.Context, workers []db.Worker, index map[string]int) error {
	rows, err := d.pool.Query(ctx, `
		SELECT worker_id, certification_id, name, expiry_date
		FROM worker_certification
	`)
	if err != nil {
		return fmt.Errorf("failed to query certifications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var workerID string
		var c db.Certification
		if err := rows.Scan(&workerID, &c.CertificationID, &c.Name, &c.ExpiryDate); err != nil {
			return fmt.Errorf("failed to scan certification: %w", err)
		}
		if i, ok := index[workerID]; ok {
			workers[i].Certifications = append(workers[i].Certifications, c)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating certifications: %w", err)
	}
	return nil
}

func (d *DB) attachTrainings(ctx context.Context, workers []db.Worker, index map[string]int) error {
	rows, err := d.pool.Query(ctx, `
		SELECT worker_id, training_id, name, status
		FROM worker_training
	`)
	if err != nil {
		return fmt.Errorf("failed to query trainings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var workerID string
		var t db.Training
		if err := rows.Scan(&workerID, &t.TrainingID, &t.Name, &t.Status); err != nil {
			return fmt.Errorf("failed to scan training: %w", err)
		}
		if i, ok := index[workerID]; ok {
			workers[i].Trainings = append(workers[i].Trainings, t)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating trainings: %w", err)
	}
	return nil
}
