package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/docsight/docsight/internal/javadoc"
)

// Member categories as stored in the members table.
const (
	categoryMethod       = "method"
	categoryField        = "field"
	categoryEnumConstant = "enum_constant"
)

// Store reads and writes FileDoc snapshots.
type Store struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put replaces the stored snapshot for doc's file. The delete and all
// inserts commit atomically; a failed pass leaves the previous snapshot
// intact.
func (s *Store) Put(doc *javadoc.FileDoc, contentVersion int64, passID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	if _, err := sq.Delete("files").Where(sq.Eq{"file_path": doc.FilePath}).RunWith(tx).Exec(); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	var author, modifier, modifyDate string
	if doc.Authorship != nil {
		author = doc.Authorship.Author
		modifier = doc.Authorship.LastModifier
		modifyDate = doc.Authorship.LastModifyDate
	}

	_, err = sq.Insert("files").
		Columns("file_path", "content_version", "pass_id", "class_name", "class_comment",
			"package_name", "author", "last_modifier", "last_modify_date", "parsed_at").
		Values(doc.FilePath, contentVersion, passID, doc.ClassName, doc.ClassComment,
			doc.PackageName, author, modifier, modifyDate,
			time.Now().UTC().Format(time.RFC3339)).
		RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("failed to insert file row: %w", err)
	}

	insert := func(members []javadoc.MemberDoc, category string) error {
		for _, m := range members {
			tagsJSON, err := json.Marshal(m.Tags)
			if err != nil {
				return fmt.Errorf("failed to marshal tags for %s: %w", m.ID, err)
			}
			_, err = sq.Insert("members").
				Columns("file_path", "member_id", "category", "name", "signature",
					"start_line", "end_line", "has_comment", "description",
					"qualifying_path", "access", "tags_json").
				Values(doc.FilePath, m.ID, category, m.Name, m.Signature,
					m.StartLine, nullableInt(m.EndLine), m.HasComment, m.Description,
					m.QualifyingPath, m.Access, string(tagsJSON)).
				RunWith(tx).Exec()
			if err != nil {
				return fmt.Errorf("failed to insert member %s: %w", m.ID, err)
			}
		}
		return nil
	}

	if err := insert(doc.Methods, categoryMethod); err != nil {
		return err
	}
	if err := insert(doc.Fields, categoryField); err != nil {
		return err
	}
	if err := insert(doc.EnumConstants, categoryEnumConstant); err != nil {
		return err
	}

	return tx.Commit()
}

// Get loads the snapshot for path when its stored content version matches.
// A missing row or a version mismatch both return ok=false.
func (s *Store) Get(path string, contentVersion int64) (*javadoc.FileDoc, bool, error) {
	row := sq.Select("content_version", "class_name", "class_comment", "package_name",
		"author", "last_modifier", "last_modify_date").
		From("files").Where(sq.Eq{"file_path": path}).
		RunWith(s.db).QueryRow()

	var storedVersion int64
	doc := &javadoc.FileDoc{
		FilePath:      path,
		Methods:       []javadoc.MemberDoc{},
		Fields:        []javadoc.MemberDoc{},
		EnumConstants: []javadoc.MemberDoc{},
	}
	var author, modifier, modifyDate string
	err := row.Scan(&storedVersion, &doc.ClassName, &doc.ClassComment, &doc.PackageName,
		&author, &modifier, &modifyDate)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read file row: %w", err)
	}
	if storedVersion != contentVersion {
		return nil, false, nil
	}

	if author != "" || modifier != "" || modifyDate != "" {
		doc.Authorship = &javadoc.Authorship{
			Author:         author,
			LastModifier:   modifier,
			LastModifyDate: modifyDate,
		}
	}

	rows, err := sq.Select("member_id", "category", "name", "signature", "start_line",
		"end_line", "has_comment", "description", "qualifying_path", "access", "tags_json").
		From("members").Where(sq.Eq{"file_path": path}).
		OrderBy("start_line ASC").
		RunWith(s.db).Query()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m javadoc.MemberDoc
		var category, tagsJSON string
		var endLine sql.NullInt64
		if err := rows.Scan(&m.ID, &category, &m.Name, &m.Signature, &m.StartLine,
			&endLine, &m.HasComment, &m.Description, &m.QualifyingPath, &m.Access, &tagsJSON); err != nil {
			return nil, false, fmt.Errorf("failed to scan member: %w", err)
		}
		if endLine.Valid {
			m.EndLine = int(endLine.Int64)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &m.Tags); err != nil {
			return nil, false, fmt.Errorf("failed to unmarshal tags for %s: %w", m.ID, err)
		}

		switch category {
		case categoryMethod:
			doc.Methods = append(doc.Methods, m)
		case categoryField:
			doc.Fields = append(doc.Fields, m)
		case categoryEnumConstant:
			doc.EnumConstants = append(doc.EnumConstants, m)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to iterate members: %w", err)
	}

	return doc, true, nil
}

// Delete removes the snapshot for path, if any.
func (s *Store) Delete(path string) error {
	_, err := sq.Delete("files").Where(sq.Eq{"file_path": path}).RunWith(s.db).Exec()
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// nullableInt converts 0 to NULL for optional line columns.
func nullableInt(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
