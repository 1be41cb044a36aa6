package resource

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidLocation = errors.New("invalid location_id")
	ErrInactive        = errors.New("resource is inactive")
)

// Resource represents a bookable simulator bay.
type Resource struct {
	ID         string
	LocationID string
	Number     int // Display number used for deterministic ordering (Bay 1, Bay 2, ...)
	Name       string
	Features   []string // Feature tags, e.g. "left-handed", "putting-green"
	Active     bool
	CreatedAt  time.Time
}

// Filter defines parameters for listing resources.
type Filter struct {
	LocationID string
	ActiveOnly bool
	Page       int
	PageSize   int
}
