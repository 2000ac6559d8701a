package mysql

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"betu_homestay/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func valJSON(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// Repo is the MySQL mirror of the room catalog.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Migrate creates the mirror tables when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (r *Repo) UpsertRoom(ctx context.Context, room domain.Room) error {
	_, err := r.db.ExecContext(ctx, upsertRoomSQL,
		room.ID,
		room.ID, // position follows id order in the registry
		room.Name,
		room.PriceNight,
		room.PriceDayNight,
		room.Image,
		valJSON(room.Gallery),
		valJSON(room.Features),
		valStr(room.Description),
		valStr(room.Description1),
	)
	return err
}

// DeleteRoomsExcept removes rooms no longer in the registry.
func (r *Repo) DeleteRoomsExcept(ctx context.Context, keep []int64) error {
	if len(keep) == 0 {
		_, err := r.db.ExecContext(ctx, `DELETE FROM rooms`)
		return err
	}
	marks := make([]string, len(keep))
	args := make([]any, len(keep))
	for i, id := range keep {
		marks[i] = "?"
		args[i] = id
	}
	q := `DELETE FROM rooms WHERE id NOT IN (` + strings.Join(marks, ",") + `)`
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *Repo) RecordPublish(ctx context.Context, rooms int) error {
	_, err := r.db.ExecContext(ctx, insertPublishRunSQL, rooms)
	return err
}

func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Room{}, domain.ErrNotFound
	}
	return room, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(s scanner) (domain.Room, error) {
	var (
		room           domain.Room
		gallery, feats []byte
		desc, desc1    sql.NullString
	)
	if err := s.Scan(
		&room.ID,
		&room.Name,
		&room.PriceNight,
		&room.PriceDayNight,
		&room.Image,
		&gallery,
		&feats,
		&desc,
		&desc1,
	); err != nil {
		return domain.Room{}, err
	}
	if err := json.Unmarshal(gallery, &room.Gallery); err != nil {
		return domain.Room{}, fmt.Errorf("room %d gallery: %w", room.ID, err)
	}
	if err := json.Unmarshal(feats, &room.Features); err != nil {
		return domain.Room{}, fmt.Errorf("room %d features: %w", room.ID, err)
	}
	room.Description = desc.String
	room.Description1 = desc1.String
	return room, nil
}
