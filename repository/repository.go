// Package repository implements the CRUD contract shared by every entity
// type. Instead of one hand-written query set per table, each entity is
// described by a Descriptor and the write paths are built from it.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrConflict    = errors.New("login already exists")
	ErrReferenced  = errors.New("record is referenced by other records")
	ErrEmptyUpdate = errors.New("no fields to update")
)

// Descriptor describes one entity table: where it lives, which text
// columns the substring filter matches, the optional image column and the
// natural ordering of its listing.
type Descriptor struct {
	Table         string
	SearchColumns []string
	ImageColumn   string
	OrderBy       string
}

// Fields is an ordered set of column/value pairs for an insert or a
// partial update. Order is preserved so generated SQL is deterministic.
type Fields struct {
	names  []string
	values []interface{}
}

func (f *Fields) Set(name string, value interface{}) {
	f.names = append(f.names, name)
	f.values = append(f.values, value)
}

func (f *Fields) Len() int { return len(f.names) }

// Create inserts the given fields and returns the new row id. A unique
// constraint violation surfaces as ErrConflict.
func Create(db *sql.DB, desc Descriptor, fields *Fields) (int64, error) {
	if fields.Len() == 0 {
		return 0, ErrEmptyUpdate
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", fields.Len()), ", ")
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		desc.Table, strings.Join(fields.names, ", "), placeholders,
	)
	result, err := db.Exec(query, fields.values...)
	if err != nil {
		return 0, translate(err)
	}
	return result.LastInsertId()
}

// Update applies a partial update: only the provided fields are touched,
// everything else keeps its previous value. An empty field set is an
// error, not a silent success.
func Update(db *sql.DB, desc Descriptor, id int, fields *Fields) error {
	if fields.Len() == 0 {
		return ErrEmptyUpdate
	}
	assignments := make([]string, fields.Len())
	for i, name := range fields.names {
		assignments[i] = name + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", desc.Table, strings.Join(assignments, ", "))
	args := append(append([]interface{}{}, fields.values...), id)

	result, err := db.Exec(query, args...)
	if err != nil {
		return translate(err)
	}
	return checkAffected(result)
}

// Delete removes a row by id.
func Delete(db *sql.DB, desc Descriptor, id int) error {
	result, err := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", desc.Table), id)
	if err != nil {
		return translate(err)
	}
	return checkAffected(result)
}

// ImagePath fetches the stored media path for a row so callers can clean
// up the file when deleting or replacing the record.
func ImagePath(db *sql.DB, desc Descriptor, id int) (string, error) {
	if desc.ImageColumn == "" {
		return "", nil
	}
	var path sql.NullString
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", desc.ImageColumn, desc.Table)
	err := db.QueryRow(query, id).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if !path.Valid {
		return "", nil
	}
	return path.String, nil
}

// SearchWhere builds the optional case-insensitive substring filter over
// the descriptor's search columns. Returns an empty clause when the
// search term is empty.
func SearchWhere(desc Descriptor, search string) (string, []interface{}) {
	if search == "" || len(desc.SearchColumns) == 0 {
		return "", nil
	}
	conditions := make([]string, len(desc.SearchColumns))
	args := make([]interface{}, len(desc.SearchColumns))
	for i, column := range desc.SearchColumns {
		conditions[i] = column + " LIKE ?"
		args[i] = "%" + search + "%"
	}
	return " WHERE (" + strings.Join(conditions, " OR ") + ")", args
}

// OrderClause returns the entity's natural ordering, if it has one.
func OrderClause(desc Descriptor) string {
	if desc.OrderBy == "" {
		return ""
	}
	return " ORDER BY " + desc.OrderBy
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return ErrReferenced
		}
		return ErrConflict
	}
	return err
}
