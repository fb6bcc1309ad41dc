package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/google/uuid"
)

// JobStatus is the lifecycle of a job listing as seen by drivers
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobAccepted  JobStatus = "accepted"
	JobCompleted JobStatus = "completed"
)

// ParseJobStatus accepts "" and "all" as no filter
func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case "", "all":
		return "", nil
	case JobPending, JobAccepted, JobCompleted:
		return JobStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidJobStatus, s)
}

// Job is a listing on the driver job board
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Owner       string    `json:"owner"`
	Salary      string    `json:"salary"`
	Location    string    `json:"location"`
	Distance    string    `json:"distance,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Type        string    `json:"type,omitempty"`
	Status      JobStatus `json:"status"`
	PostedAt    time.Time `json:"posted_at"`
}

// OwnerJobStatus is the lifecycle of a job as seen by the owner who posted it
type OwnerJobStatus string

const (
	OwnerJobPending   OwnerJobStatus = "pending"
	OwnerJobActive    OwnerJobStatus = "active"
	OwnerJobCompleted OwnerJobStatus = "completed"
)

// OwnerJob is an entry in the owner's "my jobs" list
type OwnerJob struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Driver       string         `json:"driver,omitempty"`
	Salary       string         `json:"salary"`
	Status       OwnerJobStatus `json:"status"`
	DriverRating float64        `json:"driver_rating,omitempty"`
	PostedAt     time.Time      `json:"posted_at"`
}

// NewJob is the post-a-job form
type NewJob struct {
	Title       string
	Description string
	Location    string
	Salary      string
	Duration    string
}

// Jobs lists the job board, newest first, optionally filtered by status
func (c *Catalog) Jobs(status JobStatus) []Job {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		if status == "" || j.Status == status {
			out = append(out, *j)
		}
	}
	return out
}

// Job returns a single listing
func (c *Catalog) Job(id string) (*Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, j := range c.jobs {
		if j.ID == id {
			job := *j
			return &job, nil
		}
	}
	return nil, ErrJobNotFound
}

// OwnerJobs lists the jobs posted by the signed-in owner
func (c *Catalog) OwnerJobs() []OwnerJob {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]OwnerJob, len(c.ownerJobs))
	for i, j := range c.ownerJobs {
		out[i] = *j
	}
	return out
}

// PostJob publishes a new pending job on the board and in the owner's list
func (c *Catalog) PostJob(owner string, in NewJob) (*Job, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Salary = strings.TrimSpace(in.Salary)
	if in.Title == "" || in.Location == "" || in.Salary == "" {
		return nil, ErrMissingJobFields
	}

	job := &Job{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Owner:       owner,
		Salary:      in.Salary,
		Location:    in.Location,
		Duration:    strings.TrimSpace(in.Duration),
		Status:      JobPending,
		PostedAt:    c.now(),
	}

	c.mu.Lock()
	c.jobs = append([]*Job{job}, c.jobs...)
	c.ownerJobs = append([]*OwnerJob{{
		ID:       job.ID,
		Title:    job.Title,
		Salary:   job.Salary,
		Status:   OwnerJobPending,
		PostedAt: job.PostedAt,
	}}, c.ownerJobs...)
	c.mu.Unlock()

	c.logger.Info("Job posted", logger.String("job_id", job.ID), logger.String("owner", owner))

	out := *job
	return &out, nil
}
