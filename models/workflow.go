package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Workflow categories.
const (
	CategoryStill    = "still"
	CategoryReel     = "reel"
	CategoryVideo    = "video"
	CategoryPortrait = "portrait"
)

// StepDelivered adalah terminal step untuk kategori still/reel/video.
const StepDelivered = "delivered"

// Step keys per kategori. Satu-satunya sumber kebenaran untuk urutan step,
// dipakai oleh form, progress aggregator, dan derivasi status booking.
var (
	StillSteps    = []string{"data_received", "culling", "editing", "retouching", "album_design", StepDelivered}
	ReelSteps     = []string{"data_received", "editing", "revisions", StepDelivered}
	VideoSteps    = []string{"data_received", "editing", "color_grading", "revisions", StepDelivered}
	PortraitSteps = []string{"data_received", "editing", "retouching", StepDelivered}
)

// StepsFor mengembalikan daftar step key untuk sebuah kategori.
func StepsFor(category string) []string {
	switch category {
	case CategoryStill:
		return StillSteps
	case CategoryReel:
		return ReelSteps
	case CategoryVideo:
		return VideoSteps
	case CategoryPortrait:
		return PortraitSteps
	}
	return nil
}

// WorkflowStep adalah satu langkah post-production.
// Step dengan NotApplicable=true tidak dihitung di numerator maupun denominator.
type WorkflowStep struct {
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	UpdatedBy     string     `json:"updated_by,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	NotApplicable bool       `json:"not_applicable,omitempty"`
}

// StepMap disimpan sebagai kolom JSON di DB.
type StepMap map[string]WorkflowStep

func (m StepMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *StepMap) Scan(value interface{}) error {
	if value == nil {
		*m = StepMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*m = StepMap{}
			return nil
		}
		return json.Unmarshal(v, m)
	case string:
		if v == "" {
			*m = StepMap{}
			return nil
		}
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("unsupported StepMap column type %T", value)
}

// Workflow melacak progres post-production untuk satu booking.
// EventID boleh NULL: workflow level booking dan level event sama-sama valid.
type Workflow struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	BookingID        uint      `gorm:"not null;index" json:"booking_id"`
	Booking          *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	EventID          *uint     `gorm:"index" json:"event_id,omitempty"`
	StillWorkflow    StepMap   `gorm:"type:json" json:"still_workflow"`
	ReelWorkflow     StepMap   `gorm:"type:json" json:"reel_workflow"`
	VideoWorkflow    StepMap   `gorm:"type:json" json:"video_workflow"`
	PortraitWorkflow StepMap   `gorm:"type:json" json:"portrait_workflow"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

// StepsOf mengembalikan step-map untuk kategori tertentu.
func (w *Workflow) StepsOf(category string) StepMap {
	switch category {
	case CategoryStill:
		return w.StillWorkflow
	case CategoryReel:
		return w.ReelWorkflow
	case CategoryVideo:
		return w.VideoWorkflow
	case CategoryPortrait:
		return w.PortraitWorkflow
	}
	return nil
}

// SetStep menulis satu step ke kategori yang diminta.
func (w *Workflow) SetStep(category, key string, step WorkflowStep) error {
	valid := false
	for _, k := range StepsFor(category) {
		if k == key {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown step %q for category %q", key, category)
	}
	switch category {
	case CategoryStill:
		if w.StillWorkflow == nil {
			w.StillWorkflow = StepMap{}
		}
		w.StillWorkflow[key] = step
	case CategoryReel:
		if w.ReelWorkflow == nil {
			w.ReelWorkflow = StepMap{}
		}
		w.ReelWorkflow[key] = step
	case CategoryVideo:
		if w.VideoWorkflow == nil {
			w.VideoWorkflow = StepMap{}
		}
		w.VideoWorkflow[key] = step
	case CategoryPortrait:
		if w.PortraitWorkflow == nil {
			w.PortraitWorkflow = StepMap{}
		}
		w.PortraitWorkflow[key] = step
	}
	return nil
}
