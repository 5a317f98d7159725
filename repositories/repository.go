package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound means no row has the requested id
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique column (username, email) already holds the value
	ErrDuplicate = errors.New("duplicate value for unique field")
	// ErrReference means a foreign key constraint rejected the statement
	ErrReference = errors.New("foreign key constraint violated")
)

// Filter restricts a listing to rows whose Column matches Value.
// With Contains the match is a substring match, otherwise equality.
type Filter struct {
	Column   string
	Value    interface{}
	Contains bool
}

// Repository is the storage contract shared by every resource
type Repository[T any] interface {
	List(ctx context.Context, filter *Filter) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T) error
	// Replace overwrites every column of the row with the given id in a single
	// statement; it returns ErrNotFound when no row was affected.
	Replace(ctx context.Context, id string, entity *T) error
	// Delete removes the row with the given id in a single statement; it
	// returns ErrNotFound when no row was affected.
	Delete(ctx context.Context, id string) error
}

// gormRepository implements Repository with a GORM connection
type gormRepository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a repository for entity type T
func NewRepository[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

// List returns every row matching filter (all rows when filter is nil).
// The result is never nil.
func (r *gormRepository[T]) List(ctx context.Context, filter *Filter) ([]T, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	if filter != nil {
		if filter.Contains {
			pattern := "%" + escapeLike(toString(filter.Value)) + "%"
			query = query.Where(filter.Column+" "+likeOperator(r.db.Dialector.Name())+" ? ESCAPE '!'", pattern)
		} else {
			query = query.Where(filter.Column+" = ?", filter.Value)
		}
	}

	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// GetByID looks a row up by primary key
func (r *gormRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, translate(err)
	}
	return &entity, nil
}

// Create inserts entity; the id is generated by the model hook when empty
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

func (r *gormRepository[T]) Replace(ctx context.Context, id string, entity *T) error {
	result := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", clause.Associations).
		Updates(entity)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository[T]) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps the driver independent GORM errors (TranslateError) to ours
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReference
	default:
		return err
	}
}

// likeOperator keeps contains filters case-insensitive on every driver.
// LIKE already is on sqlite and mysql's default collations.
func likeOperator(dialect string) string {
	if dialect == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

// escapeLike escapes the LIKE wildcards using '!' as escape character,
// which behaves the same on sqlite, mysql and postgres
func escapeLike(value string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(value)
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}
