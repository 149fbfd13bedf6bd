package services

import (
	"sort"

	"github.com/yeremiapane/studio-app/models"
)

const (
	ConflictDoubleBooking = "double_booking"
	SeverityHigh          = "high"
)

// RoleCounts memegang jumlah staff per role lapangan untuk satu event.
type RoleCounts struct {
	Photographers  int `json:"photographers"`
	Videographers  int `json:"videographers"`
	DroneOperators int `json:"drone_operators"`
	Editors        int `json:"editors"`
}

// Conflict adalah satu temuan double-booking: staff yang sama dipasang
// pada dua event dengan tanggal + time slot yang sama.
type Conflict struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	StaffID  uint   `json:"staff_id"`
	EventIDs []uint `json:"event_ids"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

// Shortage adalah event yang jumlah staff-nya kurang dari kebutuhan.
// Satu record per event, berisi required + assigned untuk keempat role.
type Shortage struct {
	EventID  uint       `json:"event_id"`
	Date     string     `json:"date"`
	TimeSlot string     `json:"time_slot"`
	Venue    string     `json:"venue"`
	Required RoleCounts `json:"required"`
	Assigned RoleCounts `json:"assigned"`
	Missing  []string   `json:"missing"`
}

// SchedulingReport adalah hasil lengkap deteksi jadwal.
type SchedulingReport struct {
	Conflicts []Conflict `json:"conflicts"`
	Shortages []Shortage `json:"shortages"`
}

// DetectScheduling menjalankan deteksi double-booking dan kekurangan staff
// atas snapshot events + assignments. staffList boleh nil; kalau diisi,
// job role dari roster dipakai sebagai fallback saat role assignment kosong.
// Komputasi murni: tidak ada I/O, input cacat hanya menghasilkan under-count.
func DetectScheduling(events []models.Event, assignments []models.StaffAssignment, staffList []models.Staff) SchedulingReport {
	return SchedulingReport{
		Conflicts: DetectConflicts(events, assignments),
		Shortages: DetectShortages(events, assignments, staffList),
	}
}

// DetectConflicts membagi events ke bucket (tanggal, slot), lalu mencari
// staff yang muncul di lebih dari satu event dalam bucket yang sama.
// Bucket saling lepas, jadi tidak perlu dedup lintas bucket.
func DetectConflicts(events []models.Event, assignments []models.StaffAssignment) []Conflict {
	type slotKey struct {
		date string
		slot string
	}

	// EventID -> assignments, sekali lewat.
	byEvent := make(map[uint][]models.StaffAssignment, len(events))
	for _, a := range assignments {
		byEvent[a.EventID] = append(byEvent[a.EventID], a)
	}

	buckets := make(map[slotKey][]models.Event)
	order := make([]slotKey, 0)
	for _, ev := range events {
		k := slotKey{date: ev.EventDate, slot: ev.TimeSlot}
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], ev)
	}

	conflicts := make([]Conflict, 0)
	for _, k := range order {
		bucket := buckets[k]
		if len(bucket) < 2 {
			continue
		}

		// staffID -> event IDs dalam bucket ini
		staffEvents := make(map[uint][]uint)
		staffOrder := make([]uint, 0)
		for _, ev := range bucket {
			for _, a := range byEvent[ev.ID] {
				if _, seen := staffEvents[a.StaffID]; !seen {
					staffOrder = append(staffOrder, a.StaffID)
				}
				staffEvents[a.StaffID] = append(staffEvents[a.StaffID], ev.ID)
			}
		}

		for _, staffID := range staffOrder {
			ids := staffEvents[staffID]
			if len(ids) < 2 {
				continue
			}
			conflicts = append(conflicts, Conflict{
				Type:     ConflictDoubleBooking,
				Severity: SeverityHigh,
				StaffID:  staffID,
				EventIDs: ids,
				Date:     k.date,
				TimeSlot: k.slot,
			})
		}
	}
	return conflicts
}

// DetectShortages membandingkan jumlah staff ter-assign per role dengan
// kebutuhan event. Role diambil dari assignment; kalau kosong dan roster
// tersedia, pakai job role staff. Role tak dikenal tidak dihitung.
func DetectShortages(events []models.Event, assignments []models.StaffAssignment, staffList []models.Staff) []Shortage {
	byEvent := make(map[uint][]models.StaffAssignment, len(events))
	for _, a := range assignments {
		byEvent[a.EventID] = append(byEvent[a.EventID], a)
	}

	jobRole := make(map[uint]string, len(staffList))
	for _, s := range staffList {
		jobRole[s.ID] = s.Role
	}

	shortages := make([]Shortage, 0)
	for _, ev := range events {
		required := RoleCounts{
			Photographers:  ev.RequiredPhotographers,
			Videographers:  ev.RequiredVideographers,
			DroneOperators: ev.RequiredDroneOps,
			Editors:        ev.RequiredEditors,
		}

		var assigned RoleCounts
		for _, a := range byEvent[ev.ID] {
			role := a.Role
			if role == "" {
				role = jobRole[a.StaffID]
			}
			switch role {
			case models.RolePhotographer:
				assigned.Photographers++
			case models.RoleVideographer:
				assigned.Videographers++
			case models.RoleDroneOperator:
				assigned.DroneOperators++
			case models.RoleEditor:
				assigned.Editors++
			}
		}

		missing := make([]string, 0)
		if assigned.Photographers < required.Photographers {
			missing = append(missing, models.RolePhotographer)
		}
		if assigned.Videographers < required.Videographers {
			missing = append(missing, models.RoleVideographer)
		}
		if assigned.DroneOperators < required.DroneOperators {
			missing = append(missing, models.RoleDroneOperator)
		}
		if assigned.Editors < required.Editors {
			missing = append(missing, models.RoleEditor)
		}
		if len(missing) == 0 {
			continue
		}

		shortages = append(shortages, Shortage{
			EventID:  ev.ID,
			Date:     ev.EventDate,
			TimeSlot: ev.TimeSlot,
			Venue:    ev.Venue,
			Required: required,
			Assigned: assigned,
			Missing:  missing,
		})
	}

	sort.SliceStable(shortages, func(i, j int) bool {
		return shortages[i].Date < shortages[j].Date
	})
	return shortages
}
