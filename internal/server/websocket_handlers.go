package server

import (
	"log"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
)

// websocketHandler streams committed registry events to the client as JSON
// frames until the client disconnects.
func (s *Server) websocketHandler(ctx echo.Context) error {
	conn, err := websocket.Accept(ctx.Response(), ctx.Request(), &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("[Websocket] Accept failed: %v", err)
		return err
	}
	defer conn.CloseNow()

	reqCtx := ctx.Request().Context()
	events, cancel := s.events.Subscribe(reqCtx)
	defer cancel()

	for {
		select {
		case <-reqCtx.Done():
			return conn.Close(websocket.StatusNormalClosure, "server shutting down")
		case ev, ok := <-events:
			if !ok {
				return conn.Close(websocket.StatusNormalClosure, "event stream closed")
			}
			if err := wsjson.Write(reqCtx, conn, ev); err != nil {
				return err
			}
		}
	}
}
