package repo

import (
	"context"
	"database/sql"

	"docanalysis/internal/domain"
)

const jobColumns = `id,kind,status,COALESCE(status_message,''),COALESCE(client_request_token,''),request_hash,request_json,
COALESCE(job_tag,''),COALESCE(sns_topic_arn,''),COALESCE(output_bucket,''),COALESCE(output_prefix,''),COALESCE(kms_key_id,''),
model_version,pages,COALESCE(warnings_json,''),COALESCE(summary_json,''),actor_id,created_at,COALESCE(completed_at,'')`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.Kind, &j.Status, &j.StatusMessage, &j.ClientRequestToken, &j.RequestHash, &j.RequestJSON,
		&j.JobTag, &j.SNSTopicArn, &j.OutputBucket, &j.OutputPrefix, &j.KMSKeyID,
		&j.ModelVersion, &j.Pages, &j.WarningsJSON, &j.SummaryJSON, &j.ActorID, &j.CreatedAt, &j.CompletedAt)
	if err == sql.ErrNoRows {
		return j, ErrNotFound
	}
	return j, err
}

func (r Repo) InsertJob(ctx context.Context, tx *sql.Tx, j domain.Job) error {
	_, err := r.q(tx).ExecContext(ctx, `INSERT INTO jobs(id,kind,status,status_message,client_request_token,request_hash,request_json,job_tag,sns_topic_arn,output_bucket,output_prefix,kms_key_id,model_version,pages,actor_id,created_at) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		j.ID, j.Kind, j.Status, nullable(j.StatusMessage), nullable(j.ClientRequestToken), j.RequestHash, j.RequestJSON,
		nullable(j.JobTag), nullable(j.SNSTopicArn), nullable(j.OutputBucket), nullable(j.OutputPrefix), nullable(j.KMSKeyID),
		j.ModelVersion, j.Pages, j.ActorID, j.CreatedAt)
	return conflictErr(err)
}

func (r Repo) GetJob(ctx context.Context, id string) (domain.Job, error) {
	return scanJob(r.DB.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id=?`, id))
}

// GetJobByToken finds the job started with a client request token.
func (r Repo) GetJobByToken(ctx context.Context, tx *sql.Tx, kind, token string) (domain.Job, error) {
	return scanJob(r.q(tx).QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE kind=? AND client_request_token=?`, kind, token))
}

// CountJobs counts jobs in a status.
func (r Repo) CountJobs(ctx context.Context, tx *sql.Tx, status string) (int, error) {
	var n int
	err := r.q(tx).QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE status=?`, status).Scan(&n)
	return n, err
}

// PendingJobs returns IN_PROGRESS jobs oldest first.
func (r Repo) PendingJobs(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE status='IN_PROGRESS' ORDER BY created_at ASC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

// CompleteJob stores the terminal state of a job.
func (r Repo) CompleteJob(ctx context.Context, tx *sql.Tx, j domain.Job) error {
	res, err := r.q(tx).ExecContext(ctx, `UPDATE jobs SET status=?, status_message=?, pages=?, warnings_json=?, summary_json=?, completed_at=? WHERE id=?`,
		j.Status, nullable(j.StatusMessage), j.Pages, nullable(j.WarningsJSON), nullable(j.SummaryJSON), nullable(j.CompletedAt), j.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertJobItems appends result items after the existing ones.
func (r Repo) InsertJobItems(ctx context.Context, tx *sql.Tx, jobID string, items []string) error {
	q := r.q(tx)
	var start int
	if err := q.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq),0) FROM job_items WHERE job_id=?`, jobID).Scan(&start); err != nil {
		return err
	}
	for i, item := range items {
		if _, err := q.ExecContext(ctx, `INSERT INTO job_items(job_id,seq,item_json) VALUES (?,?,?)`, jobID, start+i+1, item); err != nil {
			return err
		}
	}
	return nil
}

// JobItem is one stored result item.
type JobItem struct {
	Seq  int
	JSON string
}

// JobItems returns up to limit items with seq greater than after.
func (r Repo) JobItems(ctx context.Context, jobID string, after, limit int) ([]JobItem, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT seq,item_json FROM job_items WHERE job_id=? AND seq>? ORDER BY seq ASC LIMIT ?`, jobID, after, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []JobItem
	for rows.Next() {
		var it JobItem
		if err := rows.Scan(&it.Seq, &it.JSON); err != nil {
			return nil, err
		}
		res = append(res, it)
	}
	return res, rows.Err()
}
