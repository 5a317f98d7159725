package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/Leerling-hub/Booking/events"
	"github.com/Leerling-hub/Booking/repositories"
	"github.com/Leerling-hub/Booking/validators"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgDuplicate       = "Username or email already exists"
	msgMissingRef      = "Referenced record does not exist"
	msgStillReferenced = "Record is still referenced by other records"
	msgPasswordTooLong = "Password must be at most 72 bytes"
)

// ResourceService is the CRUD contract every resource controller relies on
type ResourceService[T any] interface {
	Name() string
	List(ctx context.Context, query url.Values) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, body []byte) (*T, error)
	Replace(ctx context.Context, id string, body []byte) (*T, error)
	Delete(ctx context.Context, id string) error
}

// builder turns a validated body into an entity. existing is nil on create
// and the stored record on replace.
type builder[T any] func(body []byte, existing *T) (*T, error)

// resourceService implements ResourceService for one entity type
type resourceService[T any] struct {
	name   string // "Amenity"
	kind   string // "amenity", used in events and logs
	rules  validators.Rules
	repo   repositories.Repository[T]
	build  builder[T]
	idOf   func(*T) string
	events events.Publisher

	// changed is called with the stored record before it is replaced or deleted
	changed func(previous *T)
}

func (s *resourceService[T]) Name() string {
	return s.name
}

// List validates the query and returns the matching records
func (s *resourceService[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	filter, err := validators.ParseQuery(query, s.rules.Filter)
	if err != nil {
		return nil, unprocessable(err.Error())
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return rows, nil
}

func (s *resourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storageError("get", id, err)
	}
	return entity, nil
}

// Create validates body, builds the entity and inserts it
func (s *resourceService[T]) Create(ctx context.Context, body []byte) (*T, error) {
	entity, err := s.decode(body, s.rules.Create, nil)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, s.storageError("create", "", err)
	}

	s.publish(ctx, events.ActionCreate, s.idOf(entity))
	return entity, nil
}

// Replace checks the record exists before validating body, so an unknown id
// is reported as not found even when the body is incomplete
func (s *resourceService[T]) Replace(ctx context.Context, id string, body []byte) (*T, error) {
	// 1. The record must exist
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storageError("get", id, err)
	}

	// 2. Validate and build the replacement
	entity, err := s.decode(body, s.rules.Replace, existing)
	if err != nil {
		return nil, err
	}

	// 3. Conditional update; a concurrent delete shows up as not found
	if err := s.repo.Replace(ctx, id, entity); err != nil {
		return nil, s.storageError("replace", id, err)
	}

	if s.changed != nil {
		s.changed(existing)
	}
	s.publish(ctx, events.ActionUpdate, id)
	return entity, nil
}

// Delete removes the record in a single conditional statement
func (s *resourceService[T]) Delete(ctx context.Context, id string) error {
	var existing *T
	if s.changed != nil {
		// the hook needs the previous state; a missing row is reported by the delete below
		existing, _ = s.repo.GetByID(ctx, id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storageError("delete", id, err)
	}

	if existing != nil {
		s.changed(existing)
	}
	s.publish(ctx, events.ActionDelete, id)
	return nil
}

// decode runs the required field check and builds the typed entity
func (s *resourceService[T]) decode(body []byte, required []string, existing *T) (*T, error) {
	fields, err := validators.DecodeObject(body)
	if err != nil {
		return nil, badRequest(msgInvalidBody)
	}

	if missing := validators.MissingFields(fields, required); len(missing) > 0 {
		log.Printf("Validation error on %s: missing %v", s.kind, missing)
		return nil, unprocessable(s.rules.Message)
	}

	entity, err := s.build(body, existing)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) || errors.Is(err, errHashing) {
			return nil, err
		}
		log.Printf("Validation error on %s: %v", s.kind, err)
		return nil, badRequest(msgInvalidBody)
	}
	return entity, nil
}

// storageError converts repository errors into service errors
func (s *resourceService[T]) storageError(op, id string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return &NotFoundError{Resource: s.name, ID: id}
	case errors.Is(err, repositories.ErrDuplicate):
		return unprocessable(msgDuplicate)
	case errors.Is(err, repositories.ErrReference) && op == "delete":
		return unprocessable(msgStillReferenced)
	case errors.Is(err, repositories.ErrReference):
		return unprocessable(msgMissingRef)
	default:
		return fmt.Errorf("%s %s %s: %w", op, s.kind, id, err)
	}
}

// publish sends a change event; failures never fail the request
func (s *resourceService[T]) publish(ctx context.Context, action, id string) {
	if s.events == nil {
		return
	}
	event := events.Event{Resource: s.kind, Action: action, ID: id, At: time.Now().UTC()}
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("Error publishing %s event for %s %s: %v", action, s.kind, id, err)
	}
}
