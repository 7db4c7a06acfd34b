// Package store is the generic persistence layer shared by every model.
//
// Every query built here carries the "deleted = false" predicate of the model's
// table; there is no method that reads, updates or deletes a soft-deleted row.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// ErrNotFound is returned when no active row matches
var ErrNotFound = errors.New("record not found")

// Scope narrows a query, e.g. a filter or a preload
type Scope = func(*gorm.DB) *gorm.DB

// Repository persists one model kind T
type Repository[T any] struct {
	db       *gorm.DB       // Base handle or the surrounding transaction
	schema   *schema.Schema // Parsed model of T, source of table and column names
	preloads []string       // Associations loaded by fetch
}

var schemaCache sync.Map // Parsed schemas shared by every repository

// New returns a repository for T bound to db. It panics if T is not a gorm
// model, which is a programming error caught at wiring time.
func New[T any](db *gorm.DB) *Repository[T] {
	s, err := schema.Parse(new(T), &schemaCache, db.NamingStrategy)
	if err != nil {
		panic(fmt.Sprintf("store: parse schema: %v", err))
	}
	return &Repository[T]{db: db, schema: s}
}

// WithTx returns a copy of the repository that runs on tx
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	return &Repository[T]{db: tx, schema: r.schema, preloads: r.preloads}
}

// WithPreload returns a copy of the repository that loads the named
// associations with every fetched row. Associated rows are loaded even when
// soft-deleted so history keeps its references.
func (r *Repository[T]) WithPreload(assoc ...string) *Repository[T] {
	preloads := append(append([]string(nil), r.preloads...), assoc...)
	return &Repository[T]{db: r.db, schema: r.schema, preloads: preloads}
}

// Table returns the table name of T
func (r *Repository[T]) Table() string {
	return r.schema.Table
}

// Column qualifies a column with the table name of T
func (r *Repository[T]) Column(name string) string {
	return r.schema.Table + "." + name
}

func (r *Repository[T]) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T)).Where(r.Column("deleted")+" = ?", false)
}

// fetch is active plus the configured preloads; counting queries must not use it
func (r *Repository[T]) fetch(ctx context.Context) *gorm.DB {
	q := r.active(ctx)
	for _, assoc := range r.preloads {
		q = q.Preload(assoc)
	}
	return q
}

// Insert creates e. Associations are never written through the child.
func (r *Repository[T]) Insert(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

// UpdateActive writes only the named columns of the active row with the given
// id. Columns left out keep whatever another writer committed meanwhile, and a
// row soft-deleted since it was read is reported as ErrNotFound, never revived.
func (r *Repository[T]) UpdateActive(ctx context.Context, id uint, columns map[string]any) error {
	byID := func(db *gorm.DB) *gorm.DB { return db.Where(r.Column("id")+" = ?", id) }
	if len(columns) == 0 {
		_, err := r.FindActiveByID(ctx, id)
		return err
	}
	res := r.active(ctx).Scopes(byID).Updates(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL counts changed rows only, so an unchanged row also lands here
		ok, err := r.ExistsActive(ctx, byID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
	}
	return nil
}

// FindActiveByID loads the active row with the given id
func (r *Repository[T]) FindActiveByID(ctx context.Context, id uint, scopes ...Scope) (*T, error) {
	var e T
	err := r.fetch(ctx).Scopes(scopes...).Where(r.Column("id")+" = ?", id).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindActiveForUpdate is FindActiveByID holding a row lock until the surrounding
// transaction ends. Dialects without row locks ignore the clause.
func (r *Repository[T]) FindActiveForUpdate(ctx context.Context, id uint) (*T, error) {
	return r.FindActiveByID(ctx, id, func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	})
}

// ExistsActive reports whether an active row matches all scopes
func (r *Repository[T]) ExistsActive(ctx context.Context, scopes ...Scope) (bool, error) {
	var n int64
	if err := r.active(ctx).Scopes(scopes...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindAllActive returns one page of active rows matching all scopes. Scopes
// are applied to the count as well, so they must only filter or join.
func (r *Repository[T]) FindAllActive(ctx context.Context, p Page, scopes ...Scope) (Result[T], error) {
	p = p.Normalize()
	res := Result[T]{Page: p.Number, PageSize: p.Size}

	if err := r.active(ctx).Scopes(scopes...).Count(&res.Total).Error; err != nil {
		return res, err
	}
	query := r.fetch(ctx).Scopes(scopes...).
		Order(r.orderBy(p.Sort)).
		Offset(p.Offset()).
		Limit(p.Size)
	if err := query.Find(&res.Items).Error; err != nil {
		return res, err
	}
	res.TotalPages = TotalPages(res.Total, p.Size)
	return res, nil
}

// SoftDeleteByID flags the active row with the given id as deleted and returns it
func (r *Repository[T]) SoftDeleteByID(ctx context.Context, id uint) (*T, error) {
	e, err := r.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := r.active(ctx).Where(r.Column("id")+" = ?", id).Update("deleted", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// deleted concurrently between the read and the update
		return nil, ErrNotFound
	}
	return e, nil
}

// orderBy turns "field" or "field,desc" into an ORDER BY clause. Fields are
// looked up in the model schema so arbitrary SQL cannot be injected; unknown
// fields fall back to the primary key. Ties are broken by id in the same direction.
func (r *Repository[T]) orderBy(sort string) clause.OrderBy {
	idCol := clause.Column{Table: r.schema.Table, Name: "id"}
	by := clause.OrderBy{}

	field, dir, _ := strings.Cut(strings.TrimSpace(sort), ",")
	desc := strings.EqualFold(strings.TrimSpace(dir), "desc")
	f := r.lookupField(strings.TrimSpace(field))
	if f == nil {
		desc = false
	} else if f.DBName != "id" {
		by.Columns = append(by.Columns, clause.OrderByColumn{
			Column: clause.Column{Table: r.schema.Table, Name: f.DBName},
			Desc:   desc,
		})
	}
	by.Columns = append(by.Columns, clause.OrderByColumn{Column: idCol, Desc: desc})
	return by
}

func (r *Repository[T]) lookupField(name string) *schema.Field {
	if name == "" {
		return nil
	}
	if f := r.schema.LookUpField(name); f != nil && f.DBName != "" {
		return f
	}
	// accept json style names such as fullName, full_name or order
	flat := strings.ReplaceAll(name, "_", "")
	for _, f := range r.schema.Fields {
		if f.DBName == "" {
			continue
		}
		if strings.EqualFold(f.Name, flat) || strings.EqualFold(strings.ReplaceAll(f.DBName, "_", ""), flat) {
			return f
		}
	}
	return nil
}

// Atomic runs fn inside one database transaction; any error rolls back every
// write made through tx.
func Atomic(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
