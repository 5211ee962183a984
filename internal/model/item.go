// Package model defines the to-do item and the filters over a list of them.
package model

// Item is the domain model for a todo entry.
// IDs are assigned by the store and never reused.
type Item struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
