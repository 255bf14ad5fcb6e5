// Package server streams a session's packed cells to websocket clients and
// applies the control commands they send back.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"bitlife/internal/session"

	"github.com/gorilla/websocket"
)

type clientCommand struct {
	client *Client
	cmd    Command
	err    error
}

// Hub owns the set of connected clients and is the only goroutine that
// drives the session forward.
type Hub struct {
	session *session.Session
	rate    int
	newSeed func() int64

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
	done       chan struct{}

	upgrader websocket.Upgrader
}

// NewHub initializes a hub that advances s rate times per second.
// A rate of zero only advances on explicit step commands.
func NewHub(s *session.Session, rate int) *Hub {
	return &Hub{
		session:    s,
		rate:       rate,
		newSeed:    func() int64 { return time.Now().UnixNano() },
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan clientCommand),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Run starts the hub's main loop. It returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	var tick <-chan time.Time
	if h.rate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(h.rate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[hub] shutting down, dropping %d clients", len(h.clients))
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			client.queue(message{kind: websocket.BinaryMessage, data: EncodeFrame(h.session.Frame())})
			log.Printf("[hub] client %s connected (%d total)", client.addr, len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[hub] client %s disconnected", client.addr)
			}
		case cc := <-h.commands:
			if _, ok := h.clients[cc.client]; !ok {
				continue
			}
			err := cc.err
			if err == nil {
				err = cc.cmd.Apply(h.session, h.newSeed)
			}
			if err != nil {
				log.Printf("[hub] rejected %q from %s: %v", cc.cmd.Type, cc.client.addr, err)
				cc.client.queue(message{kind: websocket.TextMessage, data: errorReply(err)})
				continue
			}
			h.broadcastFrame()
		case <-tick:
			if h.session.Advance() {
				h.broadcastFrame()
			}
		}
	}
}

// ServeHTTP upgrades the request to a websocket and attaches the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[hub] upgrade failed: %v", err)
		return
	}
	client := newClient(h, conn, r.RemoteAddr)
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}
	go client.writePump()
	go client.readPump()
}

func (h *Hub) broadcastFrame() {
	if len(h.clients) == 0 {
		return
	}
	payload := EncodeFrame(h.session.Frame())
	for client := range h.clients {
		if !client.queue(message{kind: websocket.BinaryMessage, data: payload}) {
			log.Printf("[hub] client %s too slow, dropping", client.addr)
			delete(h.clients, client)
			close(client.send)
		}
	}
}
