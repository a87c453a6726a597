// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"agriatoo/internal/domain/entity"
)

// ChangeKind classifies a single delta delivered by a live subscription.
type ChangeKind int

const (
	// ChangeAdded means the record entered the subscription's result set.
	// The initial snapshot after (re)connect is delivered as added deltas.
	ChangeAdded ChangeKind = iota
	// ChangeModified means an in-set record's fields changed.
	ChangeModified
	// ChangeRemoved means the record left the result set.
	ChangeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// OrderDelta is one change on a watched order query.
type OrderDelta struct {
	Kind  ChangeKind
	Order *entity.Order
}

// PendingNotificationDelta is one change on a watched pending
// notification query.
type PendingNotificationDelta struct {
	Kind   ChangeKind
	Record *entity.PendingNotification
}
