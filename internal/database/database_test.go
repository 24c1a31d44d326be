package database

import (
	"path/filepath"
	"testing"
)

// TestRunMigrations_CreatesSchema はマイグレーション適用後にkv_entriesテーブルへ
// 読み書きできることを検証する。
func TestRunMigrations_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate.db")

	if err := RunMigrations(path); err != nil {
		t.Fatalf("RunMigrations returned error: %v", err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO kv_entries (key, value) VALUES ('probe', 'ok')`); err != nil {
		t.Fatalf("failed to insert into kv_entries: %v", err)
	}

	var value string
	if err := db.QueryRow(`SELECT value FROM kv_entries WHERE key = 'probe'`).Scan(&value); err != nil {
		t.Fatalf("failed to query kv_entries: %v", err)
	}
	if value != "ok" {
		t.Errorf("value = %q, want ok", value)
	}
}

// TestRunMigrations_Idempotent は再実行がエラーなしで返ることを検証する
// （ErrNoChangeの吸収）。
func TestRunMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idempotent.db")

	if err := RunMigrations(path); err != nil {
		t.Fatalf("first RunMigrations returned error: %v", err)
	}
	if err := RunMigrations(path); err != nil {
		t.Errorf("second RunMigrations returned error: %v", err)
	}
}

// TestOpen_PingSucceeds は開いた接続が実際に使用可能であることを検証する。
func TestOpen_PingSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping returned error: %v", err)
	}
}
