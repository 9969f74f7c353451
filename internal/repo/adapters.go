package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"docanalysis/internal/domain"
)

func scanAdapter(row rowScanner) (domain.Adapter, error) {
	var a domain.Adapter
	var features string
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.AutoUpdate, &features, &a.ClientRequestToken, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return a, ErrNotFound
	}
	a.FeatureTypes = unmarshalStrings(features)
	return a, err
}

const adapterColumns = `id,name,COALESCE(description,''),auto_update,feature_types_json,COALESCE(client_request_token,''),created_at`

func (r Repo) InsertAdapter(ctx context.Context, tx *sql.Tx, a domain.Adapter) error {
	_, err := r.q(tx).ExecContext(ctx, `INSERT INTO adapters(id,name,description,auto_update,feature_types_json,client_request_token,created_at) VALUES (?,?,?,?,?,?,?)`,
		a.ID, a.Name, nullable(a.Description), a.AutoUpdate, marshalStrings(a.FeatureTypes), nullable(a.ClientRequestToken), a.CreatedAt)
	return conflictErr(err)
}

func (r Repo) GetAdapter(ctx context.Context, tx *sql.Tx, id string) (domain.Adapter, error) {
	return scanAdapter(r.q(tx).QueryRowContext(ctx, `SELECT `+adapterColumns+` FROM adapters WHERE id=?`, id))
}

func (r Repo) GetAdapterByToken(ctx context.Context, tx *sql.Tx, token string) (domain.Adapter, error) {
	return scanAdapter(r.q(tx).QueryRowContext(ctx, `SELECT `+adapterColumns+` FROM adapters WHERE client_request_token=?`, token))
}

func (r Repo) CountAdapters(ctx context.Context, tx *sql.Tx) (int, error) {
	var n int
	err := r.q(tx).QueryRowContext(ctx, `SELECT COUNT(*) FROM adapters`).Scan(&n)
	return n, err
}

// UpdateAdapter applies the non-nil fields.
func (r Repo) UpdateAdapter(ctx context.Context, tx *sql.Tx, id string, name, description, autoUpdate *string) error {
	sets := []string{}
	var args []any
	if name != nil {
		sets = append(sets, "name=?")
		args = append(args, *name)
	}
	if description != nil {
		sets = append(sets, "description=?")
		args = append(args, *description)
	}
	if autoUpdate != nil {
		sets = append(sets, "auto_update=?")
		args = append(args, *autoUpdate)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.q(tx).ExecContext(ctx, fmt.Sprintf(`UPDATE adapters SET %s WHERE id=?`, strings.Join(sets, ", ")), args...)
	if err != nil {
		return conflictErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r Repo) DeleteAdapter(ctx context.Context, tx *sql.Tx, id string) error {
	res, err := r.q(tx).ExecContext(ctx, `DELETE FROM adapters WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// AdapterFilter narrows ListAdapters to a creation time window.
type AdapterFilter struct {
	After    string
	Before   string
	CursorAt string
	CursorID string
	Limit    int
}

// ListAdapters returns adapters ordered by creation time then id.
func (r Repo) ListAdapters(ctx context.Context, f AdapterFilter) ([]domain.Adapter, error) {
	clauses := []string{"1=1"}
	var args []any
	if f.After != "" {
		clauses = append(clauses, "created_at>?")
		args = append(args, f.After)
	}
	if f.Before != "" {
		clauses = append(clauses, "created_at<?")
		args = append(args, f.Before)
	}
	if f.CursorAt != "" {
		clauses = append(clauses, "(created_at>? OR (created_at=? AND id>?))")
		args = append(args, f.CursorAt, f.CursorAt, f.CursorID)
	}
	args = append(args, f.Limit)
	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM adapters WHERE %s ORDER BY created_at ASC, id ASC LIMIT ?`, adapterColumns, strings.Join(clauses, " AND ")), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.Adapter
	for rows.Next() {
		a, err := scanAdapter(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

const versionColumns = `adapter_id,version,status,COALESCE(status_message,''),feature_types_json,dataset_json,output_bucket,
COALESCE(output_prefix,''),COALESCE(kms_key_id,''),COALESCE(metrics_json,''),COALESCE(client_request_token,''),created_at`

func scanVersion(row rowScanner) (domain.AdapterVersion, error) {
	var v domain.AdapterVersion
	var features string
	err := row.Scan(&v.AdapterID, &v.Version, &v.Status, &v.StatusMessage, &features, &v.DatasetJSON, &v.OutputBucket,
		&v.OutputPrefix, &v.KMSKeyID, &v.MetricsJSON, &v.ClientRequestToken, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return v, ErrNotFound
	}
	v.FeatureTypes = unmarshalStrings(features)
	return v, err
}

func (r Repo) InsertAdapterVersion(ctx context.Context, tx *sql.Tx, v domain.AdapterVersion) error {
	_, err := r.q(tx).ExecContext(ctx, `INSERT INTO adapter_versions(adapter_id,version,status,status_message,feature_types_json,dataset_json,output_bucket,output_prefix,kms_key_id,metrics_json,client_request_token,created_at) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		v.AdapterID, v.Version, v.Status, nullable(v.StatusMessage), marshalStrings(v.FeatureTypes), v.DatasetJSON, v.OutputBucket,
		nullable(v.OutputPrefix), nullable(v.KMSKeyID), nullable(v.MetricsJSON), nullable(v.ClientRequestToken), v.CreatedAt)
	return conflictErr(err)
}

func (r Repo) GetAdapterVersion(ctx context.Context, tx *sql.Tx, adapterID, version string) (domain.AdapterVersion, error) {
	return scanVersion(r.q(tx).QueryRowContext(ctx, `SELECT `+versionColumns+` FROM adapter_versions WHERE adapter_id=? AND version=?`, adapterID, version))
}

func (r Repo) GetAdapterVersionByToken(ctx context.Context, tx *sql.Tx, adapterID, token string) (domain.AdapterVersion, error) {
	return scanVersion(r.q(tx).QueryRowContext(ctx, `SELECT `+versionColumns+` FROM adapter_versions WHERE adapter_id=? AND client_request_token=?`, adapterID, token))
}

func (r Repo) CountAdapterVersions(ctx context.Context, tx *sql.Tx, adapterID string) (int, error) {
	var n int
	err := r.q(tx).QueryRowContext(ctx, `SELECT COUNT(*) FROM adapter_versions WHERE adapter_id=?`, adapterID).Scan(&n)
	return n, err
}

func (r Repo) DeleteAdapterVersion(ctx context.Context, tx *sql.Tx, adapterID, version string) error {
	res, err := r.q(tx).ExecContext(ctx, `DELETE FROM adapter_versions WHERE adapter_id=? AND version=?`, adapterID, version)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// VersionFilter narrows ListAdapterVersions.
type VersionFilter struct {
	AdapterID string
	After     string
	Before    string
	CursorAt  string
	CursorKey string
	Limit     int
}

// ListAdapterVersions returns versions ordered by creation time, then
// adapter id and version.
func (r Repo) ListAdapterVersions(ctx context.Context, f VersionFilter) ([]domain.AdapterVersion, error) {
	clauses := []string{"1=1"}
	var args []any
	if f.AdapterID != "" {
		clauses = append(clauses, "adapter_id=?")
		args = append(args, f.AdapterID)
	}
	if f.After != "" {
		clauses = append(clauses, "created_at>?")
		args = append(args, f.After)
	}
	if f.Before != "" {
		clauses = append(clauses, "created_at<?")
		args = append(args, f.Before)
	}
	if f.CursorAt != "" {
		clauses = append(clauses, "(created_at>? OR (created_at=? AND adapter_id||'/'||version>?))")
		args = append(args, f.CursorAt, f.CursorAt, f.CursorKey)
	}
	args = append(args, f.Limit)
	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM adapter_versions WHERE %s ORDER BY created_at ASC, adapter_id||'/'||version ASC LIMIT ?`, versionColumns, strings.Join(clauses, " AND ")), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.AdapterVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, rows.Err()
}
