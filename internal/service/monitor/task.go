package monitor

import (
	"context"
	"errors"

	"github.com/sumever1205/listing-watch/internal/schedule"
)

type ListingMonitorTask struct {
	listingSvc ListingService
}

func NewListingMonitorTask(listingSvc ListingService) schedule.Task {
	return &ListingMonitorTask{
		listingSvc: listingSvc,
	}
}

func (t *ListingMonitorTask) Run(ctx context.Context) error {
	err := t.listingSvc.CheckAll(ctx)
	if errors.Is(err, ErrScanInFlight) {
		// a scheduled tick overlapping a manual scan is normal
		return nil
	}
	return err
}

func (t *ListingMonitorTask) Name() string {
	return "new listing monitor task"
}
