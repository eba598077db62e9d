package transport

import (
	"net"
	"testing"
	"time"

	"github.com/ridgeline-robotics/dsproto/internal/dsprotocol"
)

func TestDialDisabledSpecIsNoOp(t *testing.T) {
	conn, err := Dial(dsprotocol.SocketSpec{Peer: "radio", Disabled: true}, "")
	if err != nil {
		t.Fatalf("dial disabled spec failed: %v", err)
	}
	defer conn.Close()

	if err := conn.Send([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Send on disabled conn should be a no-op, got %v", err)
	}
	buf := make([]byte, 8)
	if _, _, err := conn.ReadFrom(buf); err == nil {
		t.Fatalf("ReadFrom on disabled conn should error")
	}
}

func TestDialLoopbackRoundTrip(t *testing.T) {
	recvSpec := dsprotocol.SocketSpec{Peer: "robot", InputPort: 0, OutputPort: 0}
	recvConn, err := Dial(recvSpec, "")
	if err != nil {
		t.Fatalf("dial receiver: %v", err)
	}
	defer recvConn.Close()

	recvPort := recvConn.recv.LocalAddr().(*net.UDPAddr).Port

	sendSpec := dsprotocol.SocketSpec{Peer: "robot", InputPort: 0, OutputPort: recvPort}
	sendConn, err := Dial(sendSpec, "127.0.0.1")
	if err != nil {
		t.Fatalf("dial sender: %v", err)
	}
	defer sendConn.Close()

	if err := sendConn.Send([]byte("hello")); err != nil {
		t.Fatalf("send: %v", err)
	}

	recvConn.recv.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 16)
	n, _, err := recvConn.ReadFrom(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(buf[:n]) != "hello" {
		t.Fatalf("got %q, want %q", buf[:n], "hello")
	}
}
