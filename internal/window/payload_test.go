package window

import (
	"sync"
	"testing"
)

func TestPayloadTakeConsumesOnce(t *testing.T) {
	cache := NewPayloadCache()
	cache.Set("settings", map[string]string{"tab": "playback"})

	v, ok := cache.Take("settings")
	if !ok {
		t.Fatal("expected payload on first take")
	}
	if v.(map[string]string)["tab"] != "playback" {
		t.Errorf("unexpected payload: %v", v)
	}

	if _, ok := cache.Take("settings"); ok {
		t.Error("second take must return nothing")
	}
}

func TestPayloadTakeWithoutSet(t *testing.T) {
	cache := NewPayloadCache()
	if _, ok := cache.Take("never-set"); ok {
		t.Error("take without set must return nothing")
	}
}

func TestPayloadPeekDoesNotConsume(t *testing.T) {
	cache := NewPayloadCache()
	cache.Set(LabelMiniPlayer, 42)

	for i := 0; i < 3; i++ {
		v, ok := cache.Peek(LabelMiniPlayer)
		if !ok || v.(int) != 42 {
			t.Fatalf("peek %d: got %v, %v", i, v, ok)
		}
	}
	if _, ok := cache.Take(LabelMiniPlayer); !ok {
		t.Error("payload should survive peeks")
	}
}

func TestPayloadSetOverwrites(t *testing.T) {
	cache := NewPayloadCache()
	cache.Set("w", "old")
	cache.Set("w", "new")
	v, _ := cache.Take("w")
	if v != "new" {
		t.Errorf("got %v, want new", v)
	}
}

func TestPayloadClear(t *testing.T) {
	cache := NewPayloadCache()
	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Clear()
	if _, ok := cache.Peek("a"); ok {
		t.Error("clear should remove all entries")
	}
	if _, ok := cache.Peek("b"); ok {
		t.Error("clear should remove all entries")
	}
}

func TestPayloadConcurrentTakeDeliversOnce(t *testing.T) {
	cache := NewPayloadCache()
	cache.Set("race", "v")

	const workers = 16
	var wg sync.WaitGroup
	got := make(chan interface{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, ok := cache.Take("race"); ok {
				got <- v
			}
		}()
	}
	wg.Wait()
	close(got)

	n := 0
	for range got {
		n++
	}
	if n != 1 {
		t.Errorf("payload delivered %d times, want exactly once", n)
	}
}
