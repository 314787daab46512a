package metrics

import (
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(500, 30*time.Millisecond)
	c.Record(429, 0)
	c.RecordOutcome("accepted")
	c.RecordOutcome("invalid_date_order")
	c.RecordOutcome("accepted")

	snap := c.Snapshot()
	if snap["requestsTotal"] != uint64(3) {
		t.Fatalf("expected 3 requests, got %v", snap["requestsTotal"])
	}
	if snap["errorsTotal"] != uint64(1) || snap["rateLimitedTotal"] != uint64(1) {
		t.Fatalf("unexpected counters %+v", snap)
	}
	if snap["avgDurationMs"] != float64(40)/3 {
		t.Fatalf("unexpected average %v", snap["avgDurationMs"])
	}
	outcomes := snap["outcomes"].(map[string]uint64)
	if outcomes["accepted"] != 2 || outcomes["invalid_date_order"] != 1 {
		t.Fatalf("unexpected outcomes %v", outcomes)
	}
}
