package ws

import (
	"sync"

	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/rs/zerolog/log"
)

const broadcastBuffer = 64

type errorDTO struct {
	Code    domain.CompositeErrorCode `json:"code"`
	Message string                    `json:"message,omitempty"`
}

type exitDTO struct {
	Code    domain.CompositeErrorCode `json:"code,omitempty"`
	Message string                    `json:"message,omitempty"`
}

// Hub fans state snapshots and host events out to every client.
// It implements port.EventHandler.
type Hub struct {
	mu         sync.Mutex
	clients    map[Client]bool
	broadcast  chan Envelope
	register   chan Client
	unregister chan Client
	quit       chan struct{}
	stopOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[Client]bool),
		broadcast:  make(chan Envelope, broadcastBuffer),
		register:   make(chan Client),
		unregister: make(chan Client),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) PublishState(s state.AppState) {
	h.publish(Envelope{Type: TypeState, Payload: s})
}

func (h *Hub) OnCallStateChanged(change domain.CallStateChange) {
	h.publish(Envelope{Type: TypeCallStateChanged, Payload: change})
}

func (h *Hub) OnError(err *domain.CompositeError) {
	dto := errorDTO{Code: err.Code}
	if err.Err != nil {
		dto.Message = err.Err.Error()
	}
	h.publish(Envelope{Type: TypeError, Payload: dto})
}

func (h *Hub) OnExited(exit domain.CompositeExit) {
	dto := exitDTO{Code: exit.Code}
	if exit.Err != nil {
		dto.Message = exit.Err.Error()
	}
	h.publish(Envelope{Type: TypeExited, Payload: dto})
}

func (h *Hub) OnRemoteParticipantJoined(ids []domain.ParticipantID) {
	h.publish(Envelope{Type: TypeParticipantsJoined, Payload: ids})
}

func (h *Hub) publish(msg Envelope) {
	select {
	case h.broadcast <- msg:
	case <-h.quit:
	default:
		log.Warn().Str("type", msg.Type).Msg("Broadcast channel full, dropping message")
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				client.Close()
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Info().Str("client_id", client.ID()).Msg("Client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
				log.Info().Str("client_id", client.ID()).Msg("Client unregistered")
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if err := client.Send(msg); err != nil {
					log.Error().Err(err).Str("client_id", client.ID()).Msg("Error sending message")
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register adds c. It returns false once the hub is stopped.
func (h *Hub) Register(c Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.quit:
		return false
	}
}

func (h *Hub) Unregister(c Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}
