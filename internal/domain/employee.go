package domain

import "time"

// Employee is the alternate, repository-level schema. Gender and
// department are references into lookup tables and stay opaque here.
type Employee struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	DateOfBirth  time.Time
	GenderID     int
	DepartmentID int
}
