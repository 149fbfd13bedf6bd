package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/studio-app/models"
)

func TestProgressCountsPerCategory(t *testing.T) {
	w := models.Workflow{
		StillWorkflow: stepsDone(models.StillSteps, "data_received", "culling"),
		ReelWorkflow:  stepsDone(models.ReelSteps, models.ReelSteps...),
	}

	p := Progress(&w)

	assert.Equal(t, 2, p.Still)
	assert.Equal(t, len(models.StillSteps), p.StillTotal)
	assert.Equal(t, len(models.ReelSteps), p.Reel)
	assert.Equal(t, len(models.ReelSteps), p.ReelTotal)
	assert.Equal(t, 0, p.Video)
	assert.Equal(t, 0, p.VideoTotal)
}

func TestProgressExcludesNotApplicableSteps(t *testing.T) {
	steps := stepsDone(models.PortraitSteps, "data_received", "editing")
	steps["retouching"] = models.WorkflowStep{NotApplicable: true}
	w := models.Workflow{PortraitWorkflow: steps}

	p := Progress(&w)

	// retouching keluar dari numerator dan denominator.
	assert.Equal(t, 2, p.Portrait)
	assert.Equal(t, len(models.PortraitSteps)-1, p.PortraitTotal)
}

func TestProgressNotApplicableCompletedStillExcluded(t *testing.T) {
	steps := stepsDone(models.ReelSteps)
	steps["editing"] = models.WorkflowStep{Completed: true, NotApplicable: true}
	w := models.Workflow{ReelWorkflow: steps}

	p := Progress(&w)
	assert.Equal(t, 0, p.Reel)
	assert.Equal(t, len(models.ReelSteps)-1, p.ReelTotal)
}

func TestSumProgressIsAdditive(t *testing.T) {
	workflows := []models.Workflow{
		{StillWorkflow: stepsDone(models.StillSteps, "data_received")},
		{StillWorkflow: stepsDone(models.StillSteps, "data_received", "culling")},
	}

	sum := SumProgress(workflows)

	// Penjumlahan lintas workflow tanpa dedup.
	assert.Equal(t, 3, sum.Still)
	assert.Equal(t, 2*len(models.StillSteps), sum.StillTotal)
}

func TestOverallPercent(t *testing.T) {
	p := ProgressCounts{Still: 3, StillTotal: 6, Reel: 1, ReelTotal: 4}
	// 4 dari 10 step -> 40%.
	assert.Equal(t, 40, p.OverallPercent())

	assert.Equal(t, 0, ProgressCounts{}.OverallPercent())

	full := ProgressCounts{Video: 5, VideoTotal: 5}
	assert.Equal(t, 100, full.OverallPercent())
}

func TestOverallPercentRounds(t *testing.T) {
	p := ProgressCounts{Still: 1, StillTotal: 3}
	// 33.33 -> 33
	assert.Equal(t, 33, p.OverallPercent())

	p = ProgressCounts{Still: 2, StillTotal: 3}
	// 66.67 -> 67
	assert.Equal(t, 67, p.OverallPercent())
}
