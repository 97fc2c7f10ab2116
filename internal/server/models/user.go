// Package models holds the data contracts shared by the store, service and
// transport layers.
package models

// User is one tracked individual. Count always equals len(Log) as stored;
// lookups that do not load the log still report the stored Count.
type User struct {
	ID       string
	Username string
	Count    int
	Log      []Exercise
}
