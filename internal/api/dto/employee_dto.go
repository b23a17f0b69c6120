package dto

import "time"

// EmployeeRequest is the create/update payload for the permissive
// employee layer. Gender and department are opaque lookup references.
type EmployeeRequest struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	GenderID     int       `json:"genderId"`
	DepartmentID int       `json:"departmentId"`
}

// EmployeeResponse is the record shape returned by the API.
type EmployeeResponse struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	GenderID     int       `json:"genderId"`
	DepartmentID int       `json:"departmentId"`
}
