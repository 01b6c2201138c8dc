package advisor

import (
	"github.com/riverqueue/river"
)

// ImageCleanupArgs contains the arguments for an image cleanup job submitted
// to River after an item is deleted. Enqueueing happens in the same
// transaction as the row deletion, so the job exists if and only if the item
// is gone.
type ImageCleanupArgs struct {
	// ImageKey is the object-store key of the orphaned image.
	ImageKey string `json:"imageKey"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the cleanup worker.
func (args ImageCleanupArgs) Kind() string { return "ImageCleanupJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args ImageCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
