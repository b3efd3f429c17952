package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestDeliveryLog_RecordAndList(t *testing.T) {
	mr, client := newTestClient(t)
	log := NewDeliveryLog(client, time.Hour)
	ctx := context.Background()

	outcomes := []domain.NotificationOutcome{
		{Recipient: "a@x.test", Success: true, Info: "250 OK"},
		{Recipient: "b@x.test", Success: false, Error: "mailbox unavailable"},
		{Recipient: "c@x.test", Success: true, Info: "250 OK"},
	}
	if err := log.Record(ctx, "job-1", outcomes); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := log.List(ctx, "job-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(got))
	}
	for i := range outcomes {
		if got[i] != outcomes[i] {
			t.Fatalf("outcome %d: expected %+v, got %+v", i, outcomes[i], got[i])
		}
	}

	if ttl := mr.TTL("receipts:job-1"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", ttl)
	}
}

func TestDeliveryLog_RecordReplaces(t *testing.T) {
	_, client := newTestClient(t)
	log := NewDeliveryLog(client, time.Hour)
	ctx := context.Background()

	_ = log.Record(ctx, "job-1", []domain.NotificationOutcome{{Recipient: "a@x.test"}, {Recipient: "b@x.test"}})
	if err := log.Record(ctx, "job-1", []domain.NotificationOutcome{{Recipient: "c@x.test", Success: true}}); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, _ := log.List(ctx, "job-1")
	if len(got) != 1 || got[0].Recipient != "c@x.test" {
		t.Fatalf("unexpected outcomes: %+v", got)
	}
}

func TestDeliveryLog_Expiry(t *testing.T) {
	mr, client := newTestClient(t)
	log := NewDeliveryLog(client, time.Minute)
	ctx := context.Background()

	if err := log.Record(ctx, "job-1", []domain.NotificationOutcome{{Recipient: "a@x.test", Success: true}}); err != nil {
		t.Fatalf("record: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	got, err := log.List(ctx, "job-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no outcomes after expiry, got %+v", got)
	}
}

func TestDeliveryLog_UnknownJob(t *testing.T) {
	_, client := newTestClient(t)

	got, err := NewDeliveryLog(client, 0).List(context.Background(), "nope")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestDeliveryLog_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	log := NewDeliveryLog(client, time.Hour)
	if err := log.Record(context.Background(), "job-1", []domain.NotificationOutcome{{Recipient: "a@x.test"}}); err == nil {
		t.Fatalf("expected error with server down")
	}
	if err := Ping(client)(context.Background()); err == nil {
		t.Fatalf("expected ping error with server down")
	}
}
