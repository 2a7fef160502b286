// Package store persists parse results in a SQLite snapshot database so
// unchanged files can be served without re-parsing. A file's rows are always
// replaced as one transaction, mirroring the wholesale replacement of the
// in-memory FileDoc.
package store

import (
	"database/sql"
	"fmt"
)

const createFilesTable = `
CREATE TABLE IF NOT EXISTS files (
	file_path        TEXT PRIMARY KEY,
	content_version  INTEGER NOT NULL,
	pass_id          TEXT NOT NULL,
	class_name       TEXT NOT NULL DEFAULT '',
	class_comment    TEXT NOT NULL DEFAULT '',
	package_name     TEXT NOT NULL DEFAULT '',
	author           TEXT NOT NULL DEFAULT '',
	last_modifier    TEXT NOT NULL DEFAULT '',
	last_modify_date TEXT NOT NULL DEFAULT '',
	parsed_at        TEXT NOT NULL
)`

const createMembersTable = `
CREATE TABLE IF NOT EXISTS members (
	file_path       TEXT NOT NULL,
	member_id       TEXT NOT NULL,
	category        TEXT NOT NULL,
	name            TEXT NOT NULL,
	signature       TEXT NOT NULL DEFAULT '',
	start_line      INTEGER NOT NULL,
	end_line        INTEGER,
	has_comment     INTEGER NOT NULL DEFAULT 0,
	description     TEXT NOT NULL DEFAULT '',
	qualifying_path TEXT NOT NULL DEFAULT '',
	access          TEXT NOT NULL DEFAULT 'default',
	tags_json       TEXT NOT NULL DEFAULT '{}',
	PRIMARY KEY (file_path, member_id),
	FOREIGN KEY (file_path) REFERENCES files(file_path) ON DELETE CASCADE
)`

const createMembersIndex = `
CREATE INDEX IF NOT EXISTS idx_members_file_start
	ON members(file_path, category, start_line)`

// createSchema creates all tables and indexes inside one transaction.
func createSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	if _, err := tx.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	for _, ddl := range []string{createFilesTable, createMembersTable, createMembersIndex} {
		if _, err := tx.Exec(ddl); err != nil {
			return fmt.Errorf("failed to create schema object: %w", err)
		}
	}

	return tx.Commit()
}
