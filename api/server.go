package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"vscode2helix/converter"
	converrors "vscode2helix/errors"
	"vscode2helix/logger"
	"vscode2helix/model"
)

const (
	requestIDHeader = "X-Request-ID"
	tomlContentType = "application/toml; charset=utf-8"
)

// ConvertFunc turns a VS Code theme document into a rendered Helix theme.
type ConvertFunc func(doc []byte) (*converter.Result, error)

type Options struct {
	MaxBodyBytes int64
	Version      string
}

type Server struct {
	convert  ConvertFunc
	log      *logger.Logger
	opts     Options
	sockets  *WSConnectionManager
	upgrader websocket.Upgrader
}

func NewServer(convert ConvertFunc, log *logger.Logger, opts Options) *Server {
	if convert == nil {
		convert = converter.Document
	}
	if log == nil {
		log = logger.Nop()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	return &Server{
		convert: convert,
		log:     log,
		opts:    opts,
		sockets: NewWSConnectionManager(),
	}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/api/convert", s.handleConvert)
	mux.HandleFunc("/api/convert/ws", s.handleConvertWS)
	mux.HandleFunc("/api/health", s.handleHealth)
}

// Close disconnects every open conversion socket.
func (s *Server) Close() {
	s.sockets.CloseAll()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Health{
		Status:      "ok",
		Version:     s.opts.Version,
		Connections: s.sockets.Count(),
	})
}

// ---------- convert ----------

// handleRoot serves conversions on "/" as well as /api/convert.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.handleConvert(w, r)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set(requestIDHeader, requestID)

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	log := s.log.WithFields(map[string]any{"request_id": requestID, "remote": r.RemoteAddr})

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn("request body too large")
			writeJSON(w, http.StatusRequestEntityTooLarge, model.ErrorResponse{
				RequestID: requestID,
				Error:     "request body exceeds " + humanize.IBytes(uint64(tooLarge.Limit)),
				Kind:      converrors.KindIO,
			})
			return
		}
		log.Error(err, "read request body")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			RequestID: requestID,
			Error:     "failed to read request body",
			Kind:      converrors.KindIO,
		})
		return
	}

	res, err := s.convert(body)
	if err != nil {
		kind := converrors.KindOf(err)
		log.WithFields(map[string]any{"kind": kind}).Error(err, "convert theme")
		writeJSON(w, statusFor(kind), model.ErrorResponse{
			RequestID: requestID,
			Error:     err.Error(),
			Kind:      kind,
		})
		return
	}

	log.WithFields(map[string]any{
		"theme": res.Name,
		"keys":  res.Keys,
		"in":    humanize.Bytes(uint64(len(body))),
		"out":   humanize.Bytes(uint64(len(res.TOML))),
	}).Info("converted theme")

	w.Header().Set("Content-Type", tomlContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.TOML)
}

func statusFor(kind converrors.Kind) int {
	switch kind {
	case converrors.KindParse:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ---------- websocket ----------

// handleConvertWS converts every message received on the socket and replies
// with a model.ConvertMessage. A bad document is reported in the reply and
// does not close the connection.
func (s *Server) handleConvertWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.log.Error(err, "websocket upgrade")
		return
	}
	conn.SetReadLimit(s.opts.MaxBodyBytes)

	s.sockets.Add(conn)
	defer func() {
		s.sockets.Remove(conn)
		conn.Close()
	}()

	log := s.log.WithFields(map[string]any{"remote": r.RemoteAddr})
	log.Debug("websocket connected")

	for {
		msgType, doc, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error(err, "websocket read")
			}
			log.Debug("websocket closed")
			return
		}
		if msgType != websocket.TextMessage && msgType != websocket.BinaryMessage {
			continue
		}

		reply := s.convertMessage(doc)
		if reply.OK {
			log.WithFields(map[string]any{"request_id": reply.RequestID, "keys": reply.Keys}).Info("converted theme")
		} else {
			log.WithFields(map[string]any{"request_id": reply.RequestID, "kind": reply.Kind}).Warn(reply.Error)
		}

		if err := s.sockets.WriteJSON(conn, reply); err != nil {
			log.Error(err, "websocket write")
			return
		}
	}
}

func (s *Server) convertMessage(doc []byte) model.ConvertMessage {
	msg := model.ConvertMessage{RequestID: uuid.NewString()}

	res, err := s.convert(doc)
	if err != nil {
		msg.Error = err.Error()
		msg.Kind = converrors.KindOf(err)
		return msg
	}

	msg.OK = true
	msg.Name = res.Name
	msg.Theme = string(res.TOML)
	msg.Keys = res.Keys
	return msg
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
