package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yeremiapane/studio-app/controllers"
	"github.com/yeremiapane/studio-app/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.MetricsMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	clientCtrl := controllers.NewClientController(db)
	bookingCtrl := controllers.NewBookingController(db)
	eventCtrl := controllers.NewEventController(db)
	staffCtrl := controllers.NewStaffController(db)
	assignmentCtrl := controllers.NewAssignmentController(db)
	workflowCtrl := controllers.NewWorkflowController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	clientPayCtrl := controllers.NewClientPaymentController(db)
	staffPayCtrl := controllers.NewStaffPaymentController(db)
	expenseCtrl := controllers.NewExpenseController(db)
	dashboardCtrl := controllers.NewDashboardController(db)
	notificationCtrl := controllers.NewNotificationController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.EnhancedAuthMiddleware())

	// Profil user (Admin/Manager/Staff)
	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/users", userCtrl.GetAllUsers)

	// CLIENTS (mutasi hanya manager/admin)
	auth.GET("/clients", clientCtrl.GetAllClients)
	auth.GET("/clients/:client_id", clientCtrl.GetClientByID)
	auth.GET("/clients/:client_id/summary", clientCtrl.GetClientSummary)
	auth.POST("/clients", middlewares.RequireRoles("manager"), clientCtrl.CreateClient)
	auth.PATCH("/clients/:client_id", middlewares.RequireRoles("manager"), clientCtrl.UpdateClient)
	auth.DELETE("/clients/:client_id", middlewares.RequireRoles("manager"), clientCtrl.DeleteClient)

	// BOOKINGS
	auth.GET("/bookings", bookingCtrl.GetAllBookings)
	auth.POST("/bookings", bookingCtrl.CreateBooking)
	auth.GET("/bookings/:booking_id", bookingCtrl.GetBookingByID)
	auth.PATCH("/bookings/:booking_id", bookingCtrl.UpdateBooking)
	auth.GET("/bookings/:booking_id/deletion-impact", bookingCtrl.GetDeletionImpact)
	auth.DELETE("/bookings/:booking_id", middlewares.RequireRoles("manager"), bookingCtrl.DeleteBooking)

	// EVENTS (jadwal shoot)
	auth.GET("/events", eventCtrl.GetAllEvents)
	auth.POST("/events", eventCtrl.CreateEvent)
	auth.GET("/events/calendar", eventCtrl.GetCalendar)
	auth.GET("/events/:event_id", eventCtrl.GetEventByID)
	auth.PATCH("/events/:event_id", eventCtrl.UpdateEvent)
	auth.DELETE("/events/:event_id", eventCtrl.DeleteEvent)

	// STAFF ROSTER
	auth.GET("/staff", staffCtrl.GetAllStaff)
	auth.POST("/staff", middlewares.RequireRoles("manager"), staffCtrl.CreateStaff)
	auth.GET("/staff/:staff_id", staffCtrl.GetStaffByID)
	auth.PATCH("/staff/:staff_id", middlewares.RequireRoles("manager"), staffCtrl.UpdateStaff)
	auth.DELETE("/staff/:staff_id", middlewares.RequireRoles("manager"), staffCtrl.DeleteStaff)
	auth.GET("/staff/:staff_id/summary", staffCtrl.GetStaffSummary)
	auth.GET("/my-events", staffCtrl.GetMyEvents)

	// ASSIGNMENTS
	auth.POST("/assignments", assignmentCtrl.CreateAssignment)
	auth.POST("/assignments/:assignment_id/data-received", assignmentCtrl.MarkDataReceived)
	auth.DELETE("/assignments/:assignment_id", assignmentCtrl.DeleteAssignment)

	// WORKFLOWS (post-production)
	auth.GET("/workflows/schema", workflowCtrl.GetWorkflowSchema)
	auth.POST("/workflows", workflowCtrl.CreateWorkflow)
	auth.GET("/bookings/:booking_id/workflows", workflowCtrl.GetWorkflowsByBooking)
	auth.GET("/workflows/:workflow_id", workflowCtrl.GetWorkflowByID)
	auth.PATCH("/workflows/:workflow_id/step", workflowCtrl.UpdateWorkflowStep)
	auth.DELETE("/workflows/:workflow_id", workflowCtrl.DeleteWorkflow)

	// STAFF PAYMENTS per-event, dengan rate limiter khusus untuk mutasi
	payGroup := auth.Group("/payments")
	payGroup.Use(middlewares.PaymentRateLimiter(), middlewares.LogPaymentRequest())
	{
		payGroup.POST("", paymentCtrl.CreatePayment)
		payGroup.PATCH("/:payment_id", paymentCtrl.UpdatePayment)
		payGroup.POST("/:payment_id/transactions", paymentCtrl.AddTransaction)
		payGroup.DELETE("/:payment_id", paymentCtrl.DeletePayment)
	}
	auth.GET("/payments", paymentCtrl.GetAllPayments)
	auth.GET("/payments/overdue", paymentCtrl.GetOverduePayments)
	auth.GET("/payments/:payment_id", paymentCtrl.GetPaymentByID)

	// CLIENT PAYMENT LEDGER
	auth.GET("/client-payments", clientPayCtrl.GetClientPayments)
	auth.POST("/client-payments", clientPayCtrl.CreateClientPayment)
	auth.GET("/client-payments/outstanding", clientPayCtrl.GetOutstanding)
	auth.GET("/client-payments/overdue", clientPayCtrl.GetOverdueClients)
	auth.PATCH("/client-payments/:record_id", clientPayCtrl.UpdateClientPayment)
	auth.DELETE("/client-payments/:record_id", clientPayCtrl.DeleteClientPayment)

	// STAFF PAYMENT LEDGER level booking
	auth.GET("/staff-payments", staffPayCtrl.GetStaffPayments)
	auth.POST("/staff-payments", staffPayCtrl.CreateStaffPayment)
	auth.GET("/staff-payments/pending", staffPayCtrl.GetPendingTotal)
	auth.PATCH("/staff-payments/:record_id", staffPayCtrl.UpdateStaffPayment)
	auth.DELETE("/staff-payments/:record_id", staffPayCtrl.DeleteStaffPayment)

	// EXPENSES (mutasi hanya manager/admin)
	auth.GET("/expenses", expenseCtrl.GetAllExpenses)
	auth.POST("/expenses", middlewares.RequireRoles("manager"), expenseCtrl.CreateExpense)
	auth.PATCH("/expenses/:expense_id", middlewares.RequireRoles("manager"), expenseCtrl.UpdateExpense)
	auth.DELETE("/expenses/:expense_id", middlewares.RequireRoles("manager"), expenseCtrl.DeleteExpense)

	// NOTIFICATIONS
	auth.GET("/notifications", notificationCtrl.GetNotifications)
	auth.PATCH("/notifications/read-all", notificationCtrl.MarkAllRead)
	auth.PATCH("/notifications/:notification_id/read", notificationCtrl.MarkNotificationRead)
	auth.DELETE("/notifications/:notification_id", notificationCtrl.DeleteNotification)

	// DASHBOARD & REPORTS
	auth.GET("/dashboard/stats", dashboardCtrl.GetStats)
	auth.GET("/dashboard/scheduling", dashboardCtrl.GetSchedulingReport)
	auth.GET("/dashboard/booking-statuses", dashboardCtrl.GetBookingStatuses)
	auth.GET("/dashboard/revenue-chart", dashboardCtrl.GetRevenueChart)
	auth.GET("/reports/export", dashboardCtrl.ExportBookingsCSV)
	auth.GET("/reports/export-pdf", dashboardCtrl.ExportFinanceReportPDF)

	// WebSocket endpoint dengan middleware khusus
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/:role", controllers.LiveHandler)
	}

	return r
}
