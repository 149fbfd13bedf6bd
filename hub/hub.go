package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types
const (
	EventBookingUpdate    = "booking_update"
	EventBookingDelete    = "booking_delete"
	EventEventUpdate      = "event_update"
	EventAssignmentUpdate = "assignment_update"
	EventWorkflowUpdate   = "workflow_update"
	EventPaymentUpdate    = "payment_update"
	EventPaymentOverdue   = "payment_overdue"
	EventScheduleAlert    = "schedule_alert"
	EventDashboardUpdate  = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// liveHub menampung semua client dashboard (admin, manager, staff)
// dan melindunginya dengan mutex.
type liveHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var studioHub = liveHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	studioHub.mutex.Lock()
	defer studioHub.mutex.Unlock()
	studioHub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	studioHub.mutex.Lock()
	defer studioHub.mutex.Unlock()
	delete(studioHub.clients, conn)
	conn.Close()
}

// BroadcastBookingUpdate -> menyiarkan perubahan booking ke semua client
func BroadcastBookingUpdate(data interface{}) {
	broadcast(Message{Event: EventBookingUpdate, Data: data})
}

// BroadcastBookingDelete -> notifikasi booking dihapus
func BroadcastBookingDelete(data interface{}) {
	broadcast(Message{Event: EventBookingDelete, Data: data})
}

// BroadcastEventUpdate -> perubahan event (jadwal shoot)
func BroadcastEventUpdate(data interface{}) {
	broadcast(Message{Event: EventEventUpdate, Data: data})
}

// BroadcastAssignmentUpdate -> perubahan penugasan staff
func BroadcastAssignmentUpdate(data interface{}) {
	broadcast(Message{Event: EventAssignmentUpdate, Data: data})
}

// BroadcastWorkflowUpdate -> progres post-production berubah
func BroadcastWorkflowUpdate(data interface{}) {
	broadcast(Message{Event: EventWorkflowUpdate, Data: data})
}

// BroadcastPaymentUpdate -> perubahan pembayaran (client/staff)
func BroadcastPaymentUpdate(data interface{}) {
	broadcast(Message{Event: EventPaymentUpdate, Data: data})
}

// BroadcastPaymentOverdue -> temuan pembayaran terlambat dari monitor
func BroadcastPaymentOverdue(data interface{}) {
	broadcast(Message{Event: EventPaymentOverdue, Data: data})
}

// BroadcastScheduleAlert -> temuan conflict/shortage dari monitor
func BroadcastScheduleAlert(data interface{}) {
	broadcast(Message{Event: EventScheduleAlert, Data: data})
}

// BroadcastDashboardUpdate -> update dashboard
func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{Event: EventDashboardUpdate, Data: data})
}

// BroadcastMessage -> broadcast pesan umum
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

// broadcast -> fungsi internal untuk mengirim pesan
func broadcast(msg Message) {
	studioHub.mutex.Lock()
	defer studioHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range studioHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
