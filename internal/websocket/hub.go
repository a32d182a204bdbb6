package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"supernote-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const collabChannel = "collab_events"

// Hub tracks collaboration rooms: one room per note, holding every open
// connection editing that note. Messages from one participant are fanned
// out to the rest of the room, and through Redis to rooms on other
// instances when Redis is configured.
type Hub struct {
	// rooms: NoteID -> connected clients
	rooms map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout; nil in single-node mode.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.rooms[client.NoteID] = append(h.rooms[client.NoteID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client joined room", map[string]interface{}{
				"note_id": client.NoteID,
				"user_id": client.UserID,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.NoteID]; ok {
				for i, c := range clients {
					if c == client {
						h.rooms[client.NoteID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.rooms[client.NoteID]) == 0 {
					delete(h.rooms, client.NoteID)
					h.logger.Info("Hub", "Room closed", map[string]interface{}{
						"note_id": client.NoteID,
					})
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToRoom delivers a message to every participant of a note's room
// except the sender, then publishes it to Redis for other instances.
func (h *Hub) BroadcastToRoom(noteID uuid.UUID, sender *Client, message []byte) {
	h.mu.RLock()
	clients := h.rooms[noteID]
	for _, client := range clients {
		if client == sender {
			continue
		}
		select {
		case client.Send <- message:
		default:
			// Slow client; drop it. Run closes the channel on unregister.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
	h.mu.RUnlock()

	if h.rdb != nil && sender != nil {
		payload := map[string]interface{}{
			"note_id": noteID.String(),
			"message": string(message),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), collabChannel, jsonPayload)
	}
}

// subscribeToRedis relays room messages published by other instances into
// the local rooms. The sender is nil here so nothing is re-published.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, collabChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			NoteID  string `json:"note_id"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		noteID, err := uuid.Parse(payload.NoteID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.rooms[noteID]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- []byte(payload.Message):
				default:
					go func(c *Client) { h.unregister <- c }(client)
				}
			}
		}
	}
}
