package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubListingService struct {
	checkErr error
	checks   int
}

func (s *stubListingService) Bootstrap(ctx context.Context) error {
	return nil
}

func (s *stubListingService) CheckAll(ctx context.Context) error {
	s.checks++
	return s.checkErr
}

func TestListingMonitorTask_Run(t *testing.T) {
	svc := &stubListingService{}
	task := NewListingMonitorTask(svc)

	assert.NoError(t, task.Run(context.Background()))
	assert.Equal(t, 1, svc.checks)
}

func TestListingMonitorTask_SkippedCycleIsNotAFailure(t *testing.T) {
	task := NewListingMonitorTask(&stubListingService{checkErr: ErrScanInFlight})
	assert.NoError(t, task.Run(context.Background()))
}

func TestListingMonitorTask_PropagatesCycleErrors(t *testing.T) {
	cycleErr := errors.New("load known pairs: disk I/O error")
	task := NewListingMonitorTask(&stubListingService{checkErr: cycleErr})
	assert.ErrorIs(t, task.Run(context.Background()), cycleErr)
}
