package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bitlife/internal/session"
	"bitlife/pkg/life"

	"github.com/gorilla/websocket"
)

func startHub(t *testing.T, width, height uint32, rate int) (*Hub, *httptest.Server) {
	t.Helper()
	u, err := life.NewEmpty(width, height)
	if err != nil {
		t.Fatal(err)
	}
	hub := NewHub(session.New(u), rate)
	hub.newSeed = func() int64 { return 1 }
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-hub.done
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) session.Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("got message type %d (%s), want binary frame", kind, data)
	}
	f, err := DecodeFrame(data)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func readReply(t *testing.T, conn *websocket.Conn) Reply {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if kind != websocket.TextMessage {
		t.Fatalf("got message type %d, want text reply", kind)
	}
	var r Reply
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatal(err)
	}
	return r
}

func send(t *testing.T, conn *websocket.Conn, cmd any) {
	t.Helper()
	if err := conn.WriteJSON(cmd); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	f := session.Frame{Width: 10, Height: 7, Generation: 99, Live: 3, Paused: true, Words: []uint64{0x8000000000000001, 0x20}}
	got, err := DecodeFrame(EncodeFrame(f))
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != f.Width || got.Height != f.Height || got.Generation != f.Generation ||
		got.Live != f.Live || got.Paused != f.Paused || len(got.Words) != 2 ||
		got.Words[0] != f.Words[0] || got.Words[1] != f.Words[1] {
		t.Fatalf("decoded %+v, want %+v", got, f)
	}
}

func TestDecodeFrameRejectsTruncated(t *testing.T) {
	buf := EncodeFrame(session.Frame{Width: 8, Height: 8, Words: []uint64{1}})
	for _, n := range []int{0, frameHeaderSize - 1, len(buf) - 1} {
		if _, err := DecodeFrame(buf[:n]); !errors.Is(err, ErrShortFrame) {
			t.Fatalf("DecodeFrame(%d bytes) err = %v, want ErrShortFrame", n, err)
		}
	}
}

func TestClientReceivesFrameOnConnect(t *testing.T) {
	_, srv := startHub(t, 12, 5, 0)
	conn := dial(t, srv)
	f := readFrame(t, conn)
	if f.Width != 12 || f.Height != 5 || f.Generation != 0 || f.Live != 0 || len(f.Words) != 1 {
		t.Fatalf("initial frame = %+v", f)
	}
}

func TestCommandsBroadcastFrames(t *testing.T) {
	_, srv := startHub(t, 6, 6, 0)
	a := dial(t, srv)
	readFrame(t, a)
	b := dial(t, srv)
	readFrame(t, b)

	send(t, a, Command{Type: "toggle", Row: 2, Column: 3})
	for _, conn := range []*websocket.Conn{a, b} {
		f := readFrame(t, conn)
		if !f.Alive(2, 3) || f.Live != 1 {
			t.Fatalf("frame after toggle: live=%d alive(2,3)=%v", f.Live, f.Alive(2, 3))
		}
	}

	send(t, a, Command{Type: "set", Cells: [][2]uint32{{2, 2}, {2, 4}}})
	readFrame(t, a)
	readFrame(t, b)

	send(t, b, Command{Type: "step"})
	f := readFrame(t, a)
	if f.Generation != 1 {
		t.Fatalf("generation = %d, want 1", f.Generation)
	}
	for _, row := range []uint32{1, 2, 3} {
		if !f.Alive(row, 3) {
			t.Fatalf("blinker cell (%d,3) dead after step", row)
		}
	}
	readFrame(t, b)
}

func TestInvalidCommandsReplyToSenderOnly(t *testing.T) {
	_, srv := startHub(t, 6, 6, 0)
	a := dial(t, srv)
	readFrame(t, a)
	b := dial(t, srv)
	readFrame(t, b)

	send(t, a, Command{Type: "toggle", Row: 6, Column: 0})
	if r := readReply(t, a); r.Type != "error" || !strings.Contains(r.Message, "out of range") {
		t.Fatalf("reply = %+v", r)
	}
	send(t, a, Command{Type: "teleport"})
	if r := readReply(t, a); !strings.Contains(r.Message, "unknown command") {
		t.Fatalf("reply = %+v", r)
	}
	if err := a.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if r := readReply(t, a); !strings.Contains(r.Message, "invalid command") {
		t.Fatalf("reply = %+v", r)
	}
	send(t, a, Command{Type: "resize", Width: 0, Height: 4})
	if r := readReply(t, a); !strings.Contains(r.Message, "at least 1") {
		t.Fatalf("reply = %+v", r)
	}

	// b saw none of that; the next thing it gets is the broadcast below.
	send(t, a, Command{Type: "pattern", Name: "block", Row: 0, Column: 0})
	readFrame(t, a)
	if f := readFrame(t, b); f.Live != 4 {
		t.Fatalf("b frame live = %d, want 4", f.Live)
	}
}

func TestResizeAndRandomize(t *testing.T) {
	_, srv := startHub(t, 6, 6, 0)
	conn := dial(t, srv)
	readFrame(t, conn)

	send(t, conn, Command{Type: "resize", Width: 70, Height: 2})
	f := readFrame(t, conn)
	if f.Width != 70 || f.Height != 2 || len(f.Words) != 3 || f.Live != 0 {
		t.Fatalf("frame after resize = %+v", f)
	}

	seed := int64(5)
	send(t, conn, Command{Type: "randomize", Seed: &seed})
	first := readFrame(t, conn)
	send(t, conn, Command{Type: "randomize", Seed: &seed})
	second := readFrame(t, conn)
	if first.Live == 0 {
		t.Fatal("randomize produced an empty grid")
	}
	for i := range first.Words {
		if first.Words[i] != second.Words[i] {
			t.Fatal("same randomize seed produced different grids")
		}
	}

	send(t, conn, Command{Type: "clear"})
	if f := readFrame(t, conn); f.Live != 0 {
		t.Fatalf("live after clear = %d", f.Live)
	}
}

func TestRunAdvancesUntilPaused(t *testing.T) {
	_, srv := startHub(t, 5, 5, 50)
	conn := dial(t, srv)
	readFrame(t, conn)

	var f session.Frame
	for f.Generation < 3 {
		f = readFrame(t, conn)
	}

	send(t, conn, Command{Type: "pause"})
	for !f.Paused {
		f = readFrame(t, conn)
	}
	paused := f.Generation

	send(t, conn, Command{Type: "step"})
	f = readFrame(t, conn)
	if f.Generation != paused+1 || !f.Paused {
		t.Fatalf("step while paused: gen=%d paused=%v, want gen=%d paused", f.Generation, f.Paused, paused+1)
	}
}
