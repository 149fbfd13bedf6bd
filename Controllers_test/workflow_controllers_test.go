package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/studio-app/controllers"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/utils"
)

func setupTestDBForWorkflows() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Client{},
		&models.Booking{},
		&models.Event{},
		&models.Workflow{},
	)
	if err != nil {
		panic(err)
	}
	client := models.Client{Name: "Client1", Phone: "900000001"}
	db.Create(&client)
	db.Create(&models.Booking{ClientID: client.ID, Name: "Wedding"})
	return db
}

func setupWorkflowRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	workflowCtrl := controllers.NewWorkflowController(db)
	router.POST("/workflows", workflowCtrl.CreateWorkflow)
	router.GET("/workflows/:workflow_id", workflowCtrl.GetWorkflowByID)
	router.PATCH("/workflows/:workflow_id/step", workflowCtrl.UpdateWorkflowStep)
	router.GET("/bookings/:booking_id/workflows", workflowCtrl.GetWorkflowsByBooking)
	return router
}

func createWorkflowTest(t *testing.T, router *gin.Engine) uint {
	payload := map[string]interface{}{"booking_id": 1}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/workflows", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func TestCreateWorkflowInitializesSteps(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkflows()
	router := setupWorkflowRouter(db)

	id := createWorkflowTest(t, router)

	var workflow models.Workflow
	assert.NoError(t, db.First(&workflow, id).Error)
	assert.Len(t, workflow.StillWorkflow, len(models.StillSteps))
	assert.Len(t, workflow.ReelWorkflow, len(models.ReelSteps))
	assert.Len(t, workflow.VideoWorkflow, len(models.VideoSteps))
	assert.Len(t, workflow.PortraitWorkflow, len(models.PortraitSteps))
	for _, st := range workflow.StillWorkflow {
		assert.False(t, st.Completed)
	}
}

func TestCreateWorkflowUnknownBooking(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkflows()
	router := setupWorkflowRouter(db)

	payload := map[string]interface{}{"booking_id": 999}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/workflows", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateWorkflowStepAndProgress(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkflows()
	router := setupWorkflowRouter(db)

	id := createWorkflowTest(t, router)

	payload := map[string]interface{}{
		"category":  "still",
		"step":      "culling",
		"completed": true,
		"notes":     "first pass done",
	}
	payloadBytes, _ := json.Marshal(payload)
	url := fmt.Sprintf("/workflows/%d/step", id)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	progress := data["progress"].(map[string]interface{})
	assert.EqualValues(t, 1, progress["still"])
	assert.EqualValues(t, len(models.StillSteps), progress["still_total"])

	// Step tersimpan dengan timestamp.
	var workflow models.Workflow
	assert.NoError(t, db.First(&workflow, id).Error)
	st := workflow.StillWorkflow["culling"]
	assert.True(t, st.Completed)
	assert.NotNil(t, st.CompletedAt)
	assert.Equal(t, "first pass done", st.Notes)
}

func TestUpdateWorkflowStepRejectsUnknownStep(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkflows()
	router := setupWorkflowRouter(db)

	id := createWorkflowTest(t, router)

	payload := map[string]interface{}{
		"category":  "still",
		"step":      "nonexistent",
		"completed": true,
	}
	payloadBytes, _ := json.Marshal(payload)
	url := fmt.Sprintf("/workflows/%d/step", id)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateWorkflowStepNotApplicableChangesTotals(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkflows()
	router := setupWorkflowRouter(db)

	id := createWorkflowTest(t, router)

	payload := map[string]interface{}{
		"category":       "portrait",
		"step":           "retouching",
		"not_applicable": true,
	}
	payloadBytes, _ := json.Marshal(payload)
	url := fmt.Sprintf("/workflows/%d/step", id)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	progress := data["progress"].(map[string]interface{})
	assert.EqualValues(t, len(models.PortraitSteps)-1, progress["portrait_total"])
}

func TestGetWorkflowsByBookingRollup(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkflows()
	router := setupWorkflowRouter(db)

	createWorkflowTest(t, router)
	createWorkflowTest(t, router)

	req, _ := http.NewRequest("GET", "/bookings/1/workflows", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	workflows := data["workflows"].([]interface{})
	assert.Len(t, workflows, 2)

	// Rollup aditif: dua workflow kosong, total step dobel.
	progress := data["progress"].(map[string]interface{})
	assert.EqualValues(t, 2*len(models.StillSteps), progress["still_total"])
	assert.EqualValues(t, 0, data["percent"])
}
