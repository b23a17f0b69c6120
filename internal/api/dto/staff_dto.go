package dto

import "time"

// StaffRequest is the create/update payload.
type StaffRequest struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	StartingDate time.Time `json:"startingDate"`
}

// StaffResponse is the record shape returned by the API.
type StaffResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	StartingDate time.Time `json:"startingDate"`
}
