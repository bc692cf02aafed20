package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/Wyydra/callstate/internal/adapter/driven/gateway/ws"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict to the host origin once the embedding page is served from here
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSClient is a hub client backed by one websocket connection. Writes come from the
// hub and from the read loop, so they are serialized.
type WSClient struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *WSClient) ID() string {
	return c.id
}

func (c *WSClient) Send(msg ws.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(msg)
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// ServeWS streams state and host events to the client and dispatches the intents
// it sends.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	client := &WSClient{
		id:   uuid.New().String(),
		conn: conn,
	}

	l := log.With().Str("client_id", client.id).Logger()
	l.Info().Msg("New client connected")

	if !h.Hub.Register(client) {
		conn.Close()
		return
	}

	defer func() {
		l.Info().Msg("Client disconnected")
		h.Hub.Unregister(client)
		conn.Close()
	}()

	if err := client.Send(ws.Envelope{Type: ws.TypeState, Payload: h.Composite.State()}); err != nil {
		l.Error().Err(err).Msg("Failed to send initial state")
		return
	}

	for {
		var in Intent
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			break
		}

		a, err := in.Decode()
		if err != nil {
			l.Warn().Err(err).Str("type", in.Type).Msg("Rejected intent")
			if err := client.Send(ws.Envelope{Type: TypeIntentRejected, Payload: map[string]string{"error": err.Error()}}); err != nil {
				break
			}
			continue
		}
		h.Composite.Dispatch(a)
	}
}

// TypeIntentRejected answers an intent the server could not decode.
const TypeIntentRejected = "intent_rejected"
