package repo

import (
	"context"
	"database/sql"

	"docanalysis/internal/domain"
)

func (r Repo) InsertHumanLoop(ctx context.Context, tx *sql.Tx, h domain.HumanLoop) error {
	_, err := r.q(tx).ExecContext(ctx, `INSERT INTO human_loops(arn,name,flow_definition_arn,status,reasons_json,created_at) VALUES (?,?,?,?,?,?)`,
		h.ARN, h.Name, h.FlowDefinitionARN, h.Status, marshalStrings(h.Reasons), h.CreatedAt)
	return conflictErr(err)
}

// CountActiveHumanLoops counts loops still InProgress.
func (r Repo) CountActiveHumanLoops(ctx context.Context, tx *sql.Tx) (int, error) {
	var n int
	err := r.q(tx).QueryRowContext(ctx, `SELECT COUNT(*) FROM human_loops WHERE status='InProgress'`).Scan(&n)
	return n, err
}
