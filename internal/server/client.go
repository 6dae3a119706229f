package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"delve-server/pkg/api"
	"delve-server/pkg/logger"
	"delve-server/pkg/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is the bridge between one websocket connection and the
// session. It owns two pumps: reads feed commands in, writes drain
// the hub subscription out.
type Client struct {
	session *Session
	hub     *Hub
	conn    *websocket.Conn
	updates chan api.ServerMessage
	token   string
}

func NewClient(session *Session, hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		session: session,
		hub:     hub,
		conn:    conn,
		updates: hub.Subscribe(),
		token:   utils.GenerateID(),
	}
}

// Serve runs both pumps; returns when the connection dies.
func (c *Client) Serve() {
	log := logger.Log.WithField("session", c.token)
	log.Info("client connected")

	go c.writePump()
	c.readPump()

	c.hub.Unsubscribe(c.updates)
	if err := c.conn.Close(); err != nil {
		log.WithError(err).Debug("close failed")
	}
	log.Info("client disconnected")
}

func (c *Client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("set read deadline failed")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	hello := api.ServerMessage{
		Type: api.MsgHello,
		Time: 0,
		You:  c.session.game.Player,
	}
	if err := c.conn.WriteJSON(hello); err != nil {
		return
	}

	for {
		var cmd api.ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		resp := c.session.Submit(cmd)
		if resp.Type == api.MsgError {
			// Errors go only to the issuing client.
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteJSON(resp); err != nil {
				return
			}
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.updates:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
