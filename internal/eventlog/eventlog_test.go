package eventlog_test

import (
	"context"
	"testing"

	"github.com/venev-g/psychoassess/internal/db"
	"github.com/venev-g/psychoassess/internal/eventlog"
)

func TestAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:eventlogtest.db?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer dbh.Close()

	repo := eventlog.NewRepo(dbh)
	for _, e := range []eventlog.Event{
		{Type: eventlog.SessionStarted, Key: "s1", DataJSON: "{}"},
		{Type: eventlog.InstrumentScored, Key: "s1", DataJSON: `{"test_type":"vark"}`},
		{Type: eventlog.SessionCompleted, Key: "s1", DataJSON: "{}"},
	} {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.Type, err)
		}
	}

	got, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent returned %d events, want 2", len(got))
	}
	if got[0].Type != eventlog.SessionCompleted || got[1].Type != eventlog.InstrumentScored {
		t.Errorf("order = %s, %s; want newest first", got[0].Type, got[1].Type)
	}
	if got[0].Offset <= got[1].Offset {
		t.Errorf("offsets not descending: %d then %d", got[0].Offset, got[1].Offset)
	}
	if got[0].CreatedAt == 0 {
		t.Error("created_at not set")
	}
}
