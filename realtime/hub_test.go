package realtime

import (
	"fmt"
	"testing"
	"time"
)

func TestHubRegisterDeliverUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	viewer := &Viewer{
		Send: make(chan []byte, 10),
		Room: "conv1",
	}
	hub.Register(viewer)

	data := []byte(`{"id":"m1","text":"hello"}`)
	hub.Deliver("conv1", "m1", data)

	select {
	case got := <-viewer.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.Unregister(viewer)
}

func TestHubDropsDuplicateIDs(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	viewer := &Viewer{Send: make(chan []byte, 10), Room: "conv1"}
	hub.Register(viewer)

	hub.Deliver("conv1", "m1", []byte("first"))
	hub.Deliver("conv1", "m1", []byte("again"))
	hub.Deliver("conv1", "m2", []byte("second"))

	var got []string
	for len(got) < 2 {
		select {
		case data := <-viewer.Send:
			got = append(got, string(data))
		case <-time.After(1 * time.Second):
			t.Fatalf("timeout, delivered so far: %v", got)
		}
	}

	if got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected [first second], got %v", got)
	}
	select {
	case extra := <-viewer.Send:
		t.Fatalf("unexpected extra delivery: %s", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubRoomScoping(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Viewer{Send: make(chan []byte, 10), Room: "convA"}
	b := &Viewer{Send: make(chan []byte, 10), Room: "convB"}
	hub.Register(a)
	hub.Register(b)

	hub.Deliver("convA", "m1", []byte("for A"))

	select {
	case got := <-a.Send:
		if string(got) != "for A" {
			t.Fatalf("viewer A got %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting on viewer A")
	}

	select {
	case extra := <-b.Send:
		t.Fatalf("viewer B should be silent, got %s", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubFirstAndLastViewerCallbacks(t *testing.T) {
	hub := NewHub()
	joined := make(chan string, 4)
	left := make(chan string, 4)
	hub.RoomJoined = func(room string) { joined <- room }
	hub.RoomLeft = func(room string) { left <- room }
	go hub.Run()
	defer hub.Stop()

	v1 := &Viewer{Send: make(chan []byte, 1), Room: "conv1"}
	v2 := &Viewer{Send: make(chan []byte, 1), Room: "conv1"}
	hub.Register(v1)
	hub.Register(v2)

	select {
	case room := <-joined:
		if room != "conv1" {
			t.Fatalf("joined %q", room)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for join callback")
	}
	select {
	case room := <-joined:
		t.Fatalf("second register should not rejoin, got %q", room)
	case <-time.After(50 * time.Millisecond):
	}

	hub.Unregister(v1)
	select {
	case room := <-left:
		t.Fatalf("room still has a viewer, got leave for %q", room)
	case <-time.After(50 * time.Millisecond):
	}

	hub.Unregister(v2)
	select {
	case room := <-left:
		if room != "conv1" {
			t.Fatalf("left %q", room)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for leave callback")
	}
}

func TestSeenWindowEviction(t *testing.T) {
	w := newSeenWindow()
	for i := 0; i < seenCap+1; i++ {
		if !w.remember(fmt.Sprintf("m%d", i), []byte("x")) {
			t.Fatalf("fresh id m%d reported as duplicate", i)
		}
	}
	// m0 was evicted, so it is fresh again
	if !w.remember("m0", []byte("x")) {
		t.Fatal("evicted id should be accepted again")
	}
	if w.remember(fmt.Sprintf("m%d", seenCap), []byte("x")) {
		t.Fatal("recent id should still be deduplicated")
	}
}

func TestRecentKeepsDeliveredFramesInOrder(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	hub.Deliver("conv1", "m1", []byte("one"))
	hub.Deliver("conv1", "m1", []byte("dup"))
	hub.Deliver("conv1", "m2", []byte("two"))

	deadline := time.After(1 * time.Second)
	for {
		frames := hub.Recent("conv1")
		if len(frames) == 2 {
			if string(frames[0]) != "one" || string(frames[1]) != "two" {
				t.Fatalf("recent frames = %q %q", frames[0], frames[1])
			}
			break
		}
		select {
		case <-deadline:
			t.Fatalf("timeout, recent has %d frames", len(frames))
		case <-time.After(10 * time.Millisecond):
		}
	}

	if got := hub.Recent("other"); got != nil {
		t.Fatalf("unknown room should have no frames, got %d", len(got))
	}
}

func TestRegisterAfterStopFailsFast(t *testing.T) {
	// no Run loop: the hub has already shut down, nothing drains the channels
	hub := NewHub()
	hub.Stop()

	v := &Viewer{Send: make(chan []byte, 1), Room: "conv1"}
	done := make(chan bool, 1)
	go func() { done <- hub.Register(v) }()

	select {
	case ok := <-done:
		if ok {
			t.Fatal("register after stop should be refused")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("register blocked after stop")
	}

	// unregister must not block either
	unreg := make(chan struct{})
	go func() { hub.Unregister(v); close(unreg) }()
	select {
	case <-unreg:
	case <-time.After(1 * time.Second):
		t.Fatal("unregister blocked after stop")
	}
}
