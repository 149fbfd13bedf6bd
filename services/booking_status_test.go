package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/studio-app/models"
)

const statusToday = "2025-06-15"

func stepsDone(keys []string, completed ...string) models.StepMap {
	m := make(models.StepMap, len(keys))
	done := make(map[string]bool, len(completed))
	for _, k := range completed {
		done[k] = true
	}
	for _, k := range keys {
		m[k] = models.WorkflowStep{Completed: done[k]}
	}
	return m
}

func TestDeriveBookingStatusNoEvents(t *testing.T) {
	status := DeriveBookingStatus(nil, nil, statusToday)
	assert.Equal(t, models.BookingStatusNoEvents, status)
}

func TestDeriveBookingStatusShootScheduled(t *testing.T) {
	events := []models.Event{
		{EventDate: "2025-06-01"},
		{EventDate: "2025-06-20"}, // masih di depan
	}
	// Workflow sudah jalan, tapi event mendatang tetap menang.
	workflows := []models.Workflow{
		{StillWorkflow: stepsDone(models.StillSteps, "data_received", "culling")},
	}

	status := DeriveBookingStatus(events, workflows, statusToday)
	assert.Equal(t, models.BookingStatusShootScheduled, status)
}

func TestDeriveBookingStatusEventTodayCountsAsScheduled(t *testing.T) {
	events := []models.Event{{EventDate: statusToday}}
	status := DeriveBookingStatus(events, nil, statusToday)
	assert.Equal(t, models.BookingStatusShootScheduled, status)
}

func TestDeriveBookingStatusPostProduction(t *testing.T) {
	events := []models.Event{{EventDate: "2025-06-01"}}
	workflows := []models.Workflow{
		{ReelWorkflow: stepsDone(models.ReelSteps, "data_received", "editing")},
	}

	status := DeriveBookingStatus(events, workflows, statusToday)
	assert.Equal(t, models.BookingStatusPostProduction, status)
}

func TestDeriveBookingStatusPortraitDoesNotDriveStatus(t *testing.T) {
	// Portrait bukan kategori deliverable untuk status; progres portrait
	// saja tidak membuat booking jadi Post-Production.
	events := []models.Event{{EventDate: "2025-06-01"}}
	workflows := []models.Workflow{
		{PortraitWorkflow: stepsDone(models.PortraitSteps, "editing")},
	}

	status := DeriveBookingStatus(events, workflows, statusToday)
	assert.Equal(t, models.BookingStatusInProgress, status)
}

func TestDeriveBookingStatusDelivered(t *testing.T) {
	events := []models.Event{{EventDate: "2025-06-01"}}
	workflows := []models.Workflow{
		{StillWorkflow: stepsDone(models.StillSteps, models.StillSteps...)},
		{VideoWorkflow: stepsDone(models.VideoSteps, models.VideoSteps...)},
	}

	status := DeriveBookingStatus(events, workflows, statusToday)
	assert.Equal(t, models.BookingStatusDelivered, status)
}

func TestDeriveBookingStatusMixedDeliveryStaysPostProduction(t *testing.T) {
	events := []models.Event{{EventDate: "2025-06-01"}}
	workflows := []models.Workflow{
		{StillWorkflow: stepsDone(models.StillSteps, models.StillSteps...)},
		{ReelWorkflow: stepsDone(models.ReelSteps, "data_received")},
	}

	status := DeriveBookingStatus(events, workflows, statusToday)
	assert.Equal(t, models.BookingStatusPostProduction, status)
}

func TestDeriveBookingStatusPastEventNoWorkflows(t *testing.T) {
	events := []models.Event{{EventDate: "2025-06-01"}}
	status := DeriveBookingStatus(events, nil, statusToday)
	assert.Equal(t, models.BookingStatusInProgress, status)
}
