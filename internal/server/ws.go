package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/engine"
)

const (
	authWait        = 10 * time.Second
	writeWait       = 2 * time.Second
	sessionBuffer   = 8
	maxMessageBytes = 1024
)

// wsMessage is an inbound WebSocket frame.
type wsMessage struct {
	Cmd    string `json:"cmd"`
	Token  string `json:"token,omitempty"`
	Active bool   `json:"active,omitempty"`
}

type authReply struct {
	Auth bool `json:"auth"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	id := engine.NewSessionID()
	if !s.authenticate(conn) {
		s.logger.Warn("websocket auth rejected", "remote", r.RemoteAddr)
		return
	}

	session := engine.NewChannelSession(id, sessionBuffer)
	sessions := s.runner.Sessions()
	sessions.Register(session)
	defer func() {
		session.Close()
		sessions.Unregister(id)
		s.releaseManual(id)
		s.logger.Info("websocket client left", "session", id)
	}()

	if err := writeFrame(conn, authReply{Auth: true}); err != nil {
		return
	}
	s.logger.Info("websocket client joined", "session", id, "remote", r.RemoteAddr)

	go s.writeLoop(conn, session)
	s.readLoop(conn, id)
}

// authenticate waits for an auth frame. Other frames before it are ignored.
func (s *Server) authenticate(conn *websocket.Conn) bool {
	if err := conn.SetReadDeadline(time.Now().Add(authWait)); err != nil {
		return false
	}
	defer conn.SetReadDeadline(time.Time{})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return false
		}
		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Cmd != "auth" {
			continue
		}
		if s.validToken(msg.Token) {
			return true
		}
		_ = writeFrame(conn, authReply{Auth: false})
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "auth failed"),
			time.Now().Add(writeWait))
		return false
	}
}

// readLoop turns inbound frames into runner commands until the client leaves.
func (s *Server) readLoop(conn *websocket.Conn, id engine.SessionID) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug("malformed command", "session", id, "err", err)
			continue
		}
		if msg.Cmd == "auth" {
			continue
		}
		cmd, err := core.ParseCommand(msg.Cmd, msg.Active)
		if err != nil {
			s.logger.Debug("unknown command", "session", id, "cmd", msg.Cmd)
			continue
		}
		switch cmd.Kind {
		case core.CmdManual:
			s.setManualOwner(id)
		case core.CmdAI:
			s.clearManualOwner()
		}
		s.runner.Submit(cmd)
	}
}

// writeLoop streams snapshot events to the client.
func (s *Server) writeLoop(conn *websocket.Conn, session *engine.ChannelSession) {
	for {
		select {
		case evt := <-session.Events():
			snap, ok := evt.(engine.SnapshotEvent)
			if !ok {
				continue
			}
			if err := writeFrame(conn, snap.Snapshot); err != nil {
				conn.Close()
				return
			}
		case <-session.Done():
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}

func (s *Server) setManualOwner(id engine.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manualOwner = id
}

func (s *Server) clearManualOwner() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manualOwner = ""
}

// releaseManual hands the game back to the AI when its manual driver leaves.
func (s *Server) releaseManual(id engine.SessionID) {
	s.mu.Lock()
	owned := s.manualOwner == id
	if owned {
		s.manualOwner = ""
	}
	s.mu.Unlock()

	if owned {
		s.runner.Submit(core.Command{Kind: core.CmdAI})
		s.logger.Info("manual driver left, AI resumes", "session", id)
	}
}
