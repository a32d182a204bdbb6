package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches a connection to a note's collaboration room.
func ServeWs(hub *Hub, c *websocket.Conn, noteID, userID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, NoteID: noteID, UserID: userID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // runs in the handler goroutine
}
