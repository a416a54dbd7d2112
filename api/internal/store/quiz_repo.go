package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = sql.ErrNoRows

// QuizRepo caches reconstructed quizzes keyed by (source_hash, engine, model),
// so regenerating a quiz for the same source and configuration does not burn
// another model call.
type QuizRepo struct{ DB *sql.DB }

func NewQuizRepo(db *sql.DB) *QuizRepo { return &QuizRepo{DB: db} }

// FindByHash returns the freshest cached quiz for the key. If maxAge > 0,
// entries older than that are treated as missing.
func (r *QuizRepo) FindByHash(ctx context.Context, sourceHash, engine, model string, maxAge time.Duration) (any, error) {
	const q = `
select result_json, created_at
from generated_quizzes
where source_hash = $1 and engine = $2 and model = $3
order by created_at desc
limit 1`
	var (
		js []byte
		ts time.Time
	)
	if err := r.DB.QueryRowContext(ctx, q, sourceHash, engine, model).Scan(&js, &ts); err != nil {
		return nil, err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return nil, ErrNotFound
	}
	var v any
	if err := json.Unmarshal(js, &v); err != nil {
		// broken cache row counts as a miss
		return nil, ErrNotFound
	}
	return v, nil
}

// Upsert stores a reconstructed quiz for the key, replacing a stale entry.
func (r *QuizRepo) Upsert(ctx context.Context, sourceHash, engine, model string, v any) error {
	js, err := json.Marshal(v)
	if err != nil {
		return err
	}
	const q = `
insert into generated_quizzes (source_hash, engine, model, result_json)
values ($1,$2,$3,$4)
on conflict (source_hash, engine, model) do update
set result_json = excluded.result_json,
    created_at = now()`
	_, err = r.DB.ExecContext(ctx, q, sourceHash, engine, model, js)
	return err
}

// PurgeOlderThan deletes old cache rows so the table does not grow forever.
func (r *QuizRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	cutoff := time.Now().Add(-olderThan)
	const q = `delete from generated_quizzes where created_at < $1`
	res, err := r.DB.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
