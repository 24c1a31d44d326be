package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open はSQLiteデータベース接続を開く。
// pathはデータベースファイルのパスを指定する（例: "civicpulse.db"、":memory:"）。
// sql.Openは接続を試行しないため、実際の接続確認にはdb.Ping()を使用すること。
// ストアは単一ブラウジングコンテキスト相当の占有利用を前提とするため、
// 書き込み競合を避けるために最大接続数を1に制限する。
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	return db, nil
}
