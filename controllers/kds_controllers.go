package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/foodcourt-app/backend/events"
	"github.com/foodcourt-app/backend/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// KDSHandler meng-upgrade koneksi display dapur/staff ke websocket.
// Token dikirim via query (?token=) karena browser tidak bisa set header
// di handshake websocket.
func KDSHandler(c *gin.Context) {
	claims, err := utils.ParseToken(c.Query("token"))
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	events.RegisterClient(conn, claims.Role)

	go func() {
		defer events.UnregisterClient(conn)
		for {
			// Display hanya menerima broadcast; read loop cuma untuk
			// mendeteksi koneksi putus
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
