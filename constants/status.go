package constants

// JobStatus is the canonical status for rows in export_job.
type JobStatus string

// Stable values (store these exact strings in DB). The remote service owns the
// job after submission, so locally a job only ever reaches SUBMITTED or FAILED.
const (
	JobStatusPending   JobStatus = "PENDING"   // descriptor built, not yet sent
	JobStatusSubmitted JobStatus = "SUBMITTED" // accepted by the imagery service
	JobStatusFailed    JobStatus = "FAILED"    // submission rejected
)
