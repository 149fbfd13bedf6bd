package services

import (
	"time"

	"github.com/yeremiapane/studio-app/models"
)

// categoryDelivered: step "delivered" kategori tsb sudah completed.
func categoryDelivered(steps models.StepMap) bool {
	st, ok := steps[models.StepDelivered]
	return ok && st.Completed
}

// categoryStarted: minimal satu step (selain not-applicable) sudah completed.
func categoryStarted(steps models.StepMap) bool {
	for _, st := range steps {
		if st.NotApplicable {
			continue
		}
		if st.Completed {
			return true
		}
	}
	return false
}

// DeriveBookingStatus menurunkan label lifecycle booking dari events dan
// workflows-nya, dievaluasi dalam urutan prioritas ketat:
//  1. Tidak ada event sama sekali -> No Events.
//  2. Ada event dengan tanggal >= today -> Shoot Scheduled, apapun progres
//     post-production-nya. Perbandingan string aman karena format ISO fixed-width.
//  3. Ada workflow yang sebagian jalan di still/reel/video tapi step
//     delivered-nya belum -> Post-Production.
//  4. Semua workflow punya minimal satu delivered (still/reel/video) -> Delivered.
//  5. Sisanya -> In Progress.
//
// Bukan state machine: tidak ada state tersimpan, selalu dihitung ulang.
func DeriveBookingStatus(events []models.Event, workflows []models.Workflow, today string) string {
	if len(events) == 0 {
		return models.BookingStatusNoEvents
	}

	for _, ev := range events {
		if ev.EventDate >= today {
			return models.BookingStatusShootScheduled
		}
	}

	deliverables := func(w *models.Workflow) []models.StepMap {
		return []models.StepMap{w.StillWorkflow, w.ReelWorkflow, w.VideoWorkflow}
	}

	for i := range workflows {
		for _, steps := range deliverables(&workflows[i]) {
			if categoryStarted(steps) && !categoryDelivered(steps) {
				return models.BookingStatusPostProduction
			}
		}
	}

	if len(workflows) > 0 {
		allDelivered := true
		for i := range workflows {
			delivered := false
			for _, steps := range deliverables(&workflows[i]) {
				if categoryDelivered(steps) {
					delivered = true
					break
				}
			}
			if !delivered {
				allDelivered = false
				break
			}
		}
		if allDelivered {
			return models.BookingStatusDelivered
		}
	}

	return models.BookingStatusInProgress
}

// Today mengembalikan tanggal hari ini dalam format ISO yang dipakai di seluruh app.
func Today() string {
	return time.Now().Format("2006-01-02")
}
