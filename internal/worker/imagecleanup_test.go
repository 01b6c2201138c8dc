package worker

import (
	"context"
	"errors"
	"testing"

	"stylist/internal/advisor"
	"stylist/pkg/logger"
	mockstorage "stylist/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestImageCleanupWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mockstorage.NewMockImageStore(ctrl)
	w := &ImageCleanupWorker{images: images}

	images.EXPECT().DeleteImage(gomock.Any(), "user_del/img.jpg").Return(nil)

	err := w.Work(context.Background(), &river.Job[advisor.ImageCleanupArgs]{
		Args: advisor.ImageCleanupArgs{ImageKey: "user_del/img.jpg"},
	})
	require.NoError(t, err)
}

func TestImageCleanupWorker_Work_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mockstorage.NewMockImageStore(ctrl)
	w := &ImageCleanupWorker{images: images}

	images.EXPECT().DeleteImage(gomock.Any(), "user_del/img.jpg").Return(errors.New("store down"))

	err := w.Work(context.Background(), &river.Job[advisor.ImageCleanupArgs]{
		Args: advisor.ImageCleanupArgs{ImageKey: "user_del/img.jpg"},
	})
	require.Error(t, err)
}
