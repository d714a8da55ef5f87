package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/foodcourt-app/backend/models"
)

// Event types yang disiarkan ke display dapur/staff
const (
	EventOrderStatus = "order_status"
	EventStockLow    = "stock_low"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client display (staff, chef, shipper) per koneksi.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderStatus -> menyiarkan perpindahan status sekumpulan order
func BroadcastOrderStatus(branchID uint, orderIDs []uint, from, to string) {
	broadcast(Message{
		Event: EventOrderStatus,
		Data: map[string]interface{}{
			"branch_id": branchID,
			"order_ids": orderIDs,
			"from":      from,
			"to":        to,
		},
	})
}

// BroadcastStockLow -> item yang habis setelah reservasi stok
func BroadcastStockLow(item models.MenuItem) {
	broadcast(Message{
		Event: EventStockLow,
		Data:  item,
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			continue
		}
	}
}
