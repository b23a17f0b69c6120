package domain

import "time"

// Staff models a single staff record. The ID is assigned by the store on
// creation and never reused within a process lifetime.
type Staff struct {
	ID           int
	Name         string
	Email        string
	PhoneNumber  string
	StartingDate time.Time
}
