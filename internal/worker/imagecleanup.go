package worker

import (
	"context"
	"fmt"
	"stylist/internal/advisor"
	"stylist/pkg/logger"
	"stylist/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ImageCleanupWorker is a River worker that removes item images from the
// object store after their database rows are deleted. Jobs are enqueued in
// the same transaction as the row deletion, so by the time a job runs the row
// is guaranteed gone and the image is an orphan.
//
// Deleting a key that is already absent succeeds, which makes the job
// idempotent across retries.
type ImageCleanupWorker struct {
	river.WorkerDefaults[advisor.ImageCleanupArgs]

	// images is the object store holding item images.
	images storage.ImageStore
}

// Work removes the orphaned image. Failures are returned so River retries
// the job with backoff up to its MaxAttempts.
func (w *ImageCleanupWorker) Work(ctx context.Context, job *river.Job[advisor.ImageCleanupArgs]) error {
	if err := w.images.DeleteImage(ctx, job.Args.ImageKey); err != nil {
		return fmt.Errorf("could not delete image %s: %w", job.Args.ImageKey, err)
	}

	logger.Debug(ctx, "removed orphaned image", zap.String("imageKey", job.Args.ImageKey))

	return nil
}
