package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		stop := Track("test.Stage")
		time.Sleep(time.Millisecond)
		stop()
	}
	if got := Count("test.Stage"); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
	if d := Snapshot()["test.Stage"]; d < 3*time.Millisecond {
		t.Errorf("accumulated %v, want at least 3ms", d)
	}
}

func TestResetClears(t *testing.T) {
	Track("test.Reset")()
	Reset()
	if len(Snapshot()) != 0 {
		t.Fatalf("Snapshot not empty after Reset: %v", Snapshot())
	}
	if Count("test.Reset") != 0 {
		t.Fatalf("Count not cleared after Reset")
	}
}

func TestTopNOrdersByDuration(t *testing.T) {
	Reset()
	mu.Lock()
	totals["a.Fast"] = time.Millisecond
	totals["b.Slow"] = 5 * time.Millisecond
	totals["c.Mid"] = 2500 * time.Microsecond
	mu.Unlock()

	got := TopN(2)
	want := "b.Slow:5.0ms, c.Mid:2.5ms"
	if got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if all := TopN(10); strings.Count(all, ",") != 2 {
		t.Errorf("TopN(10) = %q, want all three entries", all)
	}
	Reset()
}
