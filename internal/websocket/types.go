package websocket

import (
	"time"

	"github.com/coder/websocket"
)

// MessageTypeReload tells the browser to reload the page.
const MessageTypeReload = "reload"

// Message is the JSON frame pushed to browsers.
type Message struct {
	Type string `json:"type"`
}

// Client is one connected browser tab.
type Client struct {
	ID          string
	ConnectedAt time.Time
	RemoteAddr  string

	conn *websocket.Conn
	send chan []byte
}
