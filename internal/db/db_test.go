package db_test

import (
	"context"
	"path/filepath"
	"testing"

	dbpkg "github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/db"
)

func TestNewAndExec(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := d.Exec(ctx, `INSERT INTO t (v) VALUES (?)`, "hello"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var v string
	if err := d.QueryRow(ctx, `SELECT v FROM t WHERE id = 1`).Scan(&v); err != nil {
		t.Fatalf("query row: %v", err)
	}
	if v != "hello" {
		t.Fatalf("unexpected value: got %q want %q", v, "hello")
	}

	rows, err := d.QueryRows(ctx, `SELECT v FROM t`)
	if err != nil {
		t.Fatalf("query rows: %v", err)
	}
	defer rows.Close()
	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows err: %v", err)
	}
	if count != 1 {
		t.Fatalf("unexpected row count: got %d want 1", count)
	}
}
