package db

import "time"

// Worker is a support worker record as stored by the rostering platform.
// The engines never read the store directly; the CLI loads candidate pools
// through this adapter and hands them to the matcher as plain values.
type Worker struct {
	ID               string
	FullName         string
	HourlyRate       float64
	WorkerLevel      int
	ExperienceHours  float64
	LocationLat      *float64
	LocationLng      *float64
	Available        bool
	PreviousShiftEnd *time.Time
	Certifications   []Certification
	Trainings        []Training
}

// Certification is a certification row joined onto a worker
type Certification struct {
	CertificationID string
	Name            string
	ExpiryDate      *time.Time
}

// Training is a training row joined onto a worker
type Training struct {
	TrainingID string
	Name       string
	Status     string
}
