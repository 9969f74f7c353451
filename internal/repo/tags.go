package repo

import (
	"context"
	"database/sql"
)

// Tags returns the tags of a resource.
func (r Repo) Tags(ctx context.Context, tx *sql.Tx, arn string) (map[string]string, error) {
	rows, err := r.q(tx).QueryContext(ctx, `SELECT key,value FROM resource_tags WHERE resource_arn=? ORDER BY key`, arn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tags := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		tags[k] = v
	}
	return tags, rows.Err()
}

// PutTags upserts tags on a resource.
func (r Repo) PutTags(ctx context.Context, tx *sql.Tx, arn string, tags map[string]string) error {
	for k, v := range tags {
		if _, err := r.q(tx).ExecContext(ctx, `INSERT INTO resource_tags(resource_arn,key,value) VALUES (?,?,?) ON CONFLICT(resource_arn,key) DO UPDATE SET value=excluded.value`, arn, k, v); err != nil {
			return err
		}
	}
	return nil
}

// RemoveTags deletes the given keys; missing keys are ignored.
func (r Repo) RemoveTags(ctx context.Context, tx *sql.Tx, arn string, keys []string) error {
	for _, k := range keys {
		if _, err := r.q(tx).ExecContext(ctx, `DELETE FROM resource_tags WHERE resource_arn=? AND key=?`, arn, k); err != nil {
			return err
		}
	}
	return nil
}

// DropTags deletes every tag of a resource.
func (r Repo) DropTags(ctx context.Context, tx *sql.Tx, arn string) error {
	_, err := r.q(tx).ExecContext(ctx, `DELETE FROM resource_tags WHERE resource_arn=?`, arn)
	return err
}

// DropTagsUnder deletes the tags of a resource and of every resource nested
// under its key.
func (r Repo) DropTagsUnder(ctx context.Context, tx *sql.Tx, key string) error {
	_, err := r.q(tx).ExecContext(ctx, `DELETE FROM resource_tags WHERE resource_arn=? OR resource_arn LIKE ?`, key, key+"/%")
	return err
}
