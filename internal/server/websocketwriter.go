package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coder/websocket"

	"github.com/hazwanhalim/suaraform/internal/session"
)

// eventWriter serializes session events as JSON text messages onto a
// websocket connection.
type eventWriter struct {
	ctx  context.Context
	conn *websocket.Conn
}

func (w *eventWriter) WriteEvent(evt session.Event) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = w.conn.Write(w.ctx, websocket.MessageText, b)
	if err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	return nil
}
