package services

import (
	"math"

	"github.com/yeremiapane/studio-app/models"
)

// ProgressCounts adalah hitungan step selesai vs total per kategori.
// Step dengan not_applicable dikeluarkan dari numerator dan denominator.
type ProgressCounts struct {
	Still         int `json:"still"`
	StillTotal    int `json:"still_total"`
	Reel          int `json:"reel"`
	ReelTotal     int `json:"reel_total"`
	Video         int `json:"video"`
	VideoTotal    int `json:"video_total"`
	Portrait      int `json:"portrait"`
	PortraitTotal int `json:"portrait_total"`
}

func countSteps(steps models.StepMap) (done, total int) {
	for _, st := range steps {
		if st.NotApplicable {
			continue
		}
		total++
		if st.Completed {
			done++
		}
	}
	return done, total
}

// Progress menghitung progres satu workflow.
func Progress(w *models.Workflow) ProgressCounts {
	var p ProgressCounts
	p.Still, p.StillTotal = countSteps(w.StillWorkflow)
	p.Reel, p.ReelTotal = countSteps(w.ReelWorkflow)
	p.Video, p.VideoTotal = countSteps(w.VideoWorkflow)
	p.Portrait, p.PortraitTotal = countSteps(w.PortraitWorkflow)
	return p
}

// SumProgress menjumlahkan progres seluruh workflow sebuah booking.
// Booking bisa punya lebih dari satu workflow (level booking + per event);
// penjumlahan aditif tanpa dedup, mengikuti perilaku yang diamati.
func SumProgress(workflows []models.Workflow) ProgressCounts {
	var sum ProgressCounts
	for i := range workflows {
		p := Progress(&workflows[i])
		sum.Still += p.Still
		sum.StillTotal += p.StillTotal
		sum.Reel += p.Reel
		sum.ReelTotal += p.ReelTotal
		sum.Video += p.Video
		sum.VideoTotal += p.VideoTotal
		sum.Portrait += p.Portrait
		sum.PortraitTotal += p.PortraitTotal
	}
	return sum
}

// Completed mengembalikan total step selesai lintas kategori.
func (p ProgressCounts) Completed() int {
	return p.Still + p.Reel + p.Video + p.Portrait
}

// Total mengembalikan total step (setelah eksklusi not-applicable).
func (p ProgressCounts) Total() int {
	return p.StillTotal + p.ReelTotal + p.VideoTotal + p.PortraitTotal
}

// OverallPercent = round(100 * selesai / total), 0 kalau tidak ada step.
func (p ProgressCounts) OverallPercent() int {
	total := p.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.Completed()) / float64(total)))
}
