package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"docanalysis/internal/domain"
)

const (
	TypeJobCompleted     = "job.completed"
	TypeAdapterCreated   = "adapter.created"
	TypeAdapterDeleted   = "adapter.deleted"
	TypeVersionCreated   = "adapter_version.created"
	TypeVersionDeleted   = "adapter_version.deleted"
	TypeHumanLoopStarted = "human_loop.started"
)

type Writer struct {
	DB  *sql.DB
	Now func() time.Time
}

type EventPayload map[string]any

// Append records an event inside tx.
func (w Writer) Append(ctx context.Context, tx *sql.Tx, evtType, entityKind, entityID, actorID string, payload EventPayload) error {
	if w.Now == nil {
		w.Now = time.Now
	}
	ts := domain.Stamp(w.Now())
	if payload == nil {
		payload = EventPayload{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO events(ts,type,entity_kind,entity_id,actor_id,payload_json) VALUES (?,?,?,?,?,?)`,
		ts, evtType, entityKind, nullable(entityID), actorID, string(data))
	return err
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
