package api

// Extension point for a future asynchronous processing path.
//
// Files above the synchronous threshold are rejected outright today;
// these signatures exist so a queued-worker implementation can be added
// without changing the synchronous pipeline's internals. Queue semantics
// are deliberately not defined beyond that.

type JobID string

type JobStatus string

const (
	JobStatusUnknown JobStatus = "unknown"
	JobStatusQueued  JobStatus = "queued"
	JobStatusDone    JobStatus = "done"
)

// Enqueue would submit a large file for background processing.
// Always fails with ErrUnimplementedAsyncPath.
func (e *Engine) Enqueue(data []byte) (JobID, error) {
	return "", ErrUnimplementedAsyncPath
}

// Poll would report the status of an enqueued job. With no queue, every
// job is unknown.
func (e *Engine) Poll(id JobID) (JobStatus, error) {
	return JobStatusUnknown, ErrUnknownJob
}
