// Package ws serves generated chunk meshes to viewer clients over a
// websocket. Clients cycle the active shape; every regeneration is pushed
// to all connected viewers.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"isoforge.dev/internal/field"
	"isoforge.dev/internal/gen"
	"isoforge.dev/internal/protocol"
)

type Server struct {
	log *log.Logger

	upgrader websocket.Upgrader

	chunkEdge int

	// mu serializes shape changes and guards the viewer registry. A SHAPE
	// request regenerates synchronously while holding the lock, so
	// concurrent requests queue and run to completion in arrival order.
	mu      sync.Mutex
	state   *gen.State
	scene   *gen.Collector
	viewers map[*viewer]bool

	// OnReport, when set, receives each regeneration's report.
	OnReport func(gen.Report)
}

type viewer struct {
	out chan []byte
}

func NewServer(state *gen.State, scene *gen.Collector, chunkEdge int, logger *log.Logger) *Server {
	return &Server{
		log:       logger,
		state:     state,
		scene:     scene,
		chunkEdge: chunkEdge,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		viewers: map[*viewer]bool{},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		v := s.handshake(conn)
		if v == nil {
			return
		}
		defer s.drop(v)

		done := make(chan struct{})

		// Writer goroutine.
		go func() {
			defer close(done)
			for b := range v.out {
				_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					return
				}
			}
		}()

		// Reader loop.
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			base, err := protocol.DecodeBase(msg)
			if err != nil || base.Type != protocol.TypeShape {
				continue
			}
			var shape protocol.ShapeMsg
			if err := json.Unmarshal(msg, &shape); err != nil {
				continue
			}
			if shape.ProtocolVersion != protocol.Version {
				continue
			}
			s.handleShape(shape.Action)
		}
		s.drop(v)
		<-done
	}
}

func (s *Server) handshake(conn *websocket.Conn) *viewer {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return nil
	}
	_ = conn.SetReadDeadline(time.Time{})

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected HELLO"), time.Now().Add(time.Second))
		return nil
	}
	var hello protocol.HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil {
		return nil
	}
	if hello.ProtocolVersion != protocol.Version {
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "bad protocol_version"), time.Now().Add(time.Second))
		return nil
	}

	v := &viewer{out: make(chan []byte, 8)}

	s.mu.Lock()
	s.viewers[v] = true
	welcome := s.welcomeLocked()
	meshes := s.meshesLocked()
	s.mu.Unlock()

	v.send(mustJSON(welcome))
	v.send(mustJSON(meshes))
	return v
}

func (s *Server) drop(v *viewer) {
	s.mu.Lock()
	if s.viewers[v] {
		delete(s.viewers, v)
		close(v.out)
	}
	s.mu.Unlock()
}

// handleShape runs one regeneration and broadcasts the new mesh set.
func (s *Server) handleShape(action string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		rep gen.Report
		err error
	)
	switch action {
	case protocol.ShapeActionNext:
		rep, err = s.state.Next(s.scene)
	case protocol.ShapeActionPrev:
		rep, err = s.state.Prev(s.scene)
	default:
		return
	}
	if err != nil {
		s.log.Printf("regenerate: %v", err)
		return
	}
	s.log.Printf("shape %s: %d/%d chunks meshed, %d vertices, %d triangles in %s",
		rep.Shape, rep.Chunks-rep.EmptyChunks, rep.Chunks, rep.Vertices, rep.Triangles, rep.Duration)
	if s.OnReport != nil {
		s.OnReport(rep)
	}

	b := mustJSON(s.meshesLocked())
	for v := range s.viewers {
		v.send(b)
	}
}

func (s *Server) welcomeLocked() protocol.WelcomeMsg {
	return protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		ShapeNames:      field.ShapeNames(),
		ChunkEdge:       s.chunkEdge,
	}
}

func (s *Server) meshesLocked() protocol.MeshesMsg {
	shape := s.state.CurrentShape()
	msg := protocol.MeshesMsg{
		Type:            protocol.TypeMeshes,
		ProtocolVersion: protocol.Version,
		Shape:           shape.Name,
		ShapeIndex:      s.state.ShapeIndex(),
		Meshes:          []protocol.MeshWire{},
	}
	for _, m := range s.scene.Meshes() {
		msg.Meshes = append(msg.Meshes, protocol.WireMesh(m))
	}
	return msg
}

// send drops the message when the viewer's queue is full; a stalled viewer
// only loses intermediate mesh sets, it never blocks generation.
func (v *viewer) send(b []byte) {
	select {
	case v.out <- b:
	default:
	}
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
