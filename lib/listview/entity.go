// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package listview

// Entity is a record that can appear in a list view. EntityID must be
// unique and stable within one store for as long as the view is
// mounted.
type Entity interface {
	EntityID() string
	EntityStatus() string
}

// Searchable is implemented by entities that expose text fields to the
// search box. Entities that do not implement it are searched by id.
type Searchable interface {
	SearchText() []string
}

// Find returns the entity with the given id.
func Find[T Entity](entities []T, id string) (T, bool) {
	for _, entity := range entities {
		if entity.EntityID() == id {
			return entity, true
		}
	}
	var zero T
	return zero, false
}

// IndexOf returns the position of the entity with the given id, or -1.
func IndexOf[T Entity](entities []T, id string) int {
	for index, entity := range entities {
		if entity.EntityID() == id {
			return index
		}
	}
	return -1
}
