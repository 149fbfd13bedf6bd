package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/services"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats -> ringkasan utama dashboard: jumlah entitas, posisi keuangan,
// distribusi status booking, dan temuan jadwal. Semua dihitung dari satu
// snapshot supaya angkanya konsisten satu sama lain.
func (dc *DashboardController) GetStats(c *gin.Context) {
	snap, err := services.LoadSnapshot(dc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	today := services.Today()

	statusCounts := make(map[string]int)
	for _, b := range snap.Bookings {
		statusCounts[snap.StatusOf(b.ID, today)]++
	}

	var received, expenses float64
	for _, r := range snap.ClientPaymentRecords {
		if r.Status == models.ClientPaymentReceived {
			received += r.Amount
		}
	}
	for _, e := range snap.Expenses {
		expenses += e.Amount
	}

	upcoming := 0
	for _, ev := range snap.Events {
		if ev.EventDate >= today {
			upcoming++
		}
	}

	report := services.DetectScheduling(snap.Events, snap.Assignments, snap.Staff)
	outstanding := services.ClientOutstanding(snap.Bookings, snap.ClientPaymentRecords)
	staffPending := services.StaffPending(snap.StaffPaymentRecords)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"clients":         len(snap.Clients),
		"bookings":        len(snap.Bookings),
		"events":          len(snap.Events),
		"staff":           len(snap.Staff),
		"upcoming_events": upcoming,
		"booking_status":  statusCounts,
		"revenue": gin.H{
			"received":  received,
			"formatted": utils.FormatCurrencyINR(received),
		},
		"expenses": gin.H{
			"total":     expenses,
			"formatted": utils.FormatCurrencyINR(expenses),
		},
		"client_outstanding": outstanding,
		"staff_pending":      staffPending,
		"conflicts":          len(report.Conflicts),
		"shortages":          len(report.Shortages),
	})
}

// GetSchedulingReport -> seluruh temuan double-booking dan kekurangan staff
func (dc *DashboardController) GetSchedulingReport(c *gin.Context) {
	snap, err := services.LoadSnapshot(dc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report := services.DetectScheduling(snap.Events, snap.Assignments, snap.Staff)
	utils.RespondJSON(c, http.StatusOK, "Scheduling report", report)
}

// GetBookingStatuses -> status lifecycle seluruh booking sekali jalan
func (dc *DashboardController) GetBookingStatuses(c *gin.Context) {
	snap, err := services.LoadSnapshot(dc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	today := services.Today()
	type statusRow struct {
		BookingID uint   `json:"booking_id"`
		ClientID  uint   `json:"client_id"`
		Name      string `json:"name"`
		Status    string `json:"status"`
	}

	rows := make([]statusRow, 0, len(snap.Bookings))
	for _, b := range snap.Bookings {
		rows = append(rows, statusRow{
			BookingID: b.ID,
			ClientID:  b.ClientID,
			Name:      b.Name,
			Status:    snap.StatusOf(b.ID, today),
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Booking statuses", rows)
}

// monthlyRevenue mengelompokkan pembayaran received per bulan (YYYY-MM).
func monthlyRevenue(records []models.ClientPaymentRecord) ([]string, map[string]float64) {
	totals := make(map[string]float64)
	for _, r := range records {
		if r.Status != models.ClientPaymentReceived || len(r.Date) < 7 {
			continue
		}
		totals[r.Date[:7]] += r.Amount
	}

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)
	return months, totals
}

// GetRevenueChart -> render grafik batang pendapatan bulanan sebagai PNG
func (dc *DashboardController) GetRevenueChart(c *gin.Context) {
	var records []models.ClientPaymentRecord
	if err := dc.DB.Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	months, totals := monthlyRevenue(records)
	if len(months) == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("no revenue data to chart"))
		return
	}

	bars := make([]chart.Value, 0, len(months))
	for _, m := range months {
		bars = append(bars, chart.Value{Label: m, Value: totals[m]})
	}

	graph := chart.BarChart{
		Title:    "Monthly Revenue",
		Height:   400,
		BarWidth: 50,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// ExportBookingsCSV -> ekspor booking + status + posisi bayar sebagai CSV
func (dc *DashboardController) ExportBookingsCSV(c *gin.Context) {
	snap, err := services.LoadSnapshot(dc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	clientNames := make(map[uint]string, len(snap.Clients))
	for _, cl := range snap.Clients {
		clientNames[cl.ID] = cl.Name
	}

	received := make(map[uint]float64)
	for _, r := range snap.ClientPaymentRecords {
		if r.Status == models.ClientPaymentReceived {
			received[r.BookingID] += r.Amount
		}
	}

	today := services.Today()

	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"booking_id", "client", "name", "status", "events", "package_amount", "received", "percent_done"})
	for _, b := range snap.Bookings {
		events := snap.EventsOf(b.ID)
		rollup := services.SumProgress(snap.WorkflowsOf(b.ID))

		pkg := ""
		if b.PackageAmount != nil {
			pkg = strconv.FormatFloat(*b.PackageAmount, 'f', 2, 64)
		}

		_ = w.Write([]string{
			strconv.FormatUint(uint64(b.ID), 10),
			clientNames[b.ClientID],
			b.Name,
			snap.StatusOf(b.ID, today),
			strconv.Itoa(len(events)),
			pkg,
			strconv.FormatFloat(received[b.ID], 'f', 2, 64),
			strconv.Itoa(rollup.OverallPercent()),
		})
	}
	w.Flush()
}

// ExportFinanceReportPDF -> laporan keuangan ringkas dalam PDF.
// Setiap laporan membawa reference id unik supaya bisa dilacak.
func (dc *DashboardController) ExportFinanceReportPDF(c *gin.Context) {
	snap, err := services.LoadSnapshot(dc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var received, expenses float64
	for _, r := range snap.ClientPaymentRecords {
		if r.Status == models.ClientPaymentReceived {
			received += r.Amount
		}
	}
	for _, e := range snap.Expenses {
		expenses += e.Amount
	}
	outstanding := services.ClientOutstanding(snap.Bookings, snap.ClientPaymentRecords)
	staffPending := services.StaffPending(snap.StaffPaymentRecords)

	refID := uuid.NewString()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Studio Finance Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Ref: "+refID, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+services.Today(), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	rows := []struct {
		label string
		value float64
	}{
		{"Revenue received", received},
		{"Client outstanding", outstanding},
		{"Staff pending", staffPending},
		{"Expenses", expenses},
		{"Net position", received - expenses - staffPending},
	}
	for _, row := range rows {
		pdf.CellFormat(80, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, utils.FormatCurrencyINR(row.value), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Bookings", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	today := services.Today()
	clientNames := make(map[uint]string, len(snap.Clients))
	for _, cl := range snap.Clients {
		clientNames[cl.ID] = cl.Name
	}
	for _, b := range snap.Bookings {
		line := fmt.Sprintf("#%d  %s  [%s]", b.ID, clientNames[b.ClientID], snap.StatusOf(b.ID, today))
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Finance report %s generated", refID)
	c.Header("Content-Disposition", `attachment; filename="finance-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
