package model

import (
	"fmt"
	"time"
)

const EntityName = "stall"

// Status is the single lifecycle state of a stall. Keeping it as one enum
// makes a stall that is both reserved and pending unrepresentable.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusReserved  Status = "reserved"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// DefaultPrice returns the flat price charged for a stall of the given size.
func DefaultPrice(size Size) int {
	switch size {
	case SizeMedium:
		return 150
	case SizeLarge:
		return 200
	default:
		return 100
	}
}

// MapPosition locates a stall on the floor plan in percentage coordinates.
type MapPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Stall struct {
	ID           string       `json:"id"`
	Size         Size         `json:"size"`
	Price        int          `json:"price"`
	Status       Status       `json:"status"`
	BusinessName string       `json:"business_name,omitempty"`
	Email        string       `json:"email,omitempty"`
	RequestDate  *time.Time   `json:"request_date,omitempty"`
	ApprovedDate *time.Time   `json:"approved_date,omitempty"`
	MapPosition  *MapPosition `json:"map_position,omitempty"`
}

// Request moves an available stall to pending under the given identity.
// Returns false without mutating when the stall is not available.
func (s *Stall) Request(businessName, email string, now time.Time) bool {
	if s.Status != StatusAvailable {
		return false
	}

	s.Status = StatusPending
	s.BusinessName = businessName
	s.Email = email
	s.RequestDate = &now
	s.ApprovedDate = nil

	return true
}

// Approve confirms a pending request. Anything else is a safe no-op.
func (s *Stall) Approve(now time.Time) bool {
	if s.Status != StatusPending {
		return false
	}

	s.Status = StatusReserved
	s.ApprovedDate = &now

	return true
}

// Reject declines a pending request and clears the requester identity.
// Anything else is a safe no-op.
func (s *Stall) Reject() bool {
	if s.Status != StatusPending {
		return false
	}

	s.release()

	return true
}

// Cancel releases a reserved or pending stall, but only when the caller's
// business name matches the one on record. A mismatch is a safe no-op.
func (s *Stall) Cancel(businessName string) bool {
	if s.Status == StatusAvailable {
		return false
	}

	if businessName == "" || s.BusinessName != businessName {
		return false
	}

	s.release()

	return true
}

func (s *Stall) release() {
	s.Status = StatusAvailable
	s.BusinessName = ""
	s.Email = ""
	s.RequestDate = nil
	s.ApprovedDate = nil
}

// Stats is the occupancy breakdown shown on the dashboards.
type Stats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Pending   int `json:"pending"`
	Reserved  int `json:"reserved"`
}

func CountStats(stalls []Stall) Stats {
	stats := Stats{Total: len(stalls)}
	for _, s := range stalls {
		switch s.Status {
		case StatusAvailable:
			stats.Available++
		case StatusPending:
			stats.Pending++
		case StatusReserved:
			stats.Reserved++
		}
	}

	return stats
}

// Selection is an ordered pick of stall ids with toggle semantics: selecting
// a picked id removes it, and picks beyond the limit are silently ignored.
type Selection struct {
	limit int
	ids   []string
}

func NewSelection(limit int) *Selection {
	return &Selection{limit: limit}
}

// Toggle adds or removes an id and reports whether the id is selected
// afterwards.
func (sel *Selection) Toggle(id string) bool {
	for i, existing := range sel.ids {
		if existing == id {
			sel.ids = append(sel.ids[:i], sel.ids[i+1:]...)

			return false
		}
	}

	if len(sel.ids) >= sel.limit {
		return false
	}

	sel.ids = append(sel.ids, id)

	return true
}

func (sel *Selection) IDs() []string {
	out := make([]string, len(sel.ids))
	copy(out, sel.ids)

	return out
}

func (sel *Selection) Len() int {
	return len(sel.ids)
}

type NamingPattern string

const (
	NamingAlphanumeric NamingPattern = "alphanumeric"
	NamingNumeric      NamingPattern = "numeric"
)

// GenerateConfig describes a fresh inventory: how many stalls of each size
// and how their ids are spelled.
type GenerateConfig struct {
	Small   int
	Medium  int
	Large   int
	Pattern NamingPattern
	Prefix  string
}

// GenerateFromConfig builds a fresh inventory ordered small, medium, large.
// Alphanumeric ids run A1..A10 then B1.. and so on; numeric ids count up
// from 1. The prefix, when set, is prepended to every id.
func GenerateFromConfig(cfg GenerateConfig) []Stall {
	total := cfg.Small + cfg.Medium + cfg.Large
	stalls := make([]Stall, 0, total)

	sizeAt := func(i int) Size {
		switch {
		case i < cfg.Small:
			return SizeSmall
		case i < cfg.Small+cfg.Medium:
			return SizeMedium
		default:
			return SizeLarge
		}
	}

	for i := 0; i < total; i++ {
		size := sizeAt(i)
		stalls = append(stalls, Stall{
			ID:     cfg.Prefix + generateID(cfg.Pattern, i),
			Size:   size,
			Price:  DefaultPrice(size),
			Status: StatusAvailable,
		})
	}

	return stalls
}

func generateID(pattern NamingPattern, index int) string {
	if pattern == NamingNumeric {
		return fmt.Sprintf("%d", index+1)
	}

	row := rune('A' + index/10)
	col := index%10 + 1

	return fmt.Sprintf("%c%d", row, col)
}
