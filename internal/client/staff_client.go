// Package client wraps the staff HTTP API for consumers such as the
// terminal UI. Transport failures and non-2xx responses come back as
// errors; they are never swallowed here.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spec-kit/staff-service/internal/api/dto"
	"github.com/spec-kit/staff-service/internal/domain"
)

// ErrNotFound marks a 404 from the API.
var ErrNotFound = errors.New("staff not found")

// ValidationError carries the field-error map from a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// StaffClient is a thin HTTP wrapper returning domain objects.
type StaffClient struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *StaffClient {
	return &StaffClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// GetStaffs fetches all records.
func (c *StaffClient) GetStaffs(ctx context.Context) ([]domain.Staff, error) {
	raw, err := c.do(ctx, http.MethodGet, "/staff", nil)
	if err != nil {
		return nil, err
	}
	var list []dto.StaffResponse
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode staff list: %w", err)
	}
	result := make([]domain.Staff, 0, len(list))
	for _, item := range list {
		result = append(result, fromResponse(item))
	}
	return result, nil
}

// GetStaff fetches one record by id.
func (c *StaffClient) GetStaff(ctx context.Context, id int) (*domain.Staff, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/staff/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeStaff(raw)
}

// AddStaff creates a record; the returned record carries the assigned id.
func (c *StaffClient) AddStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error) {
	raw, err := c.do(ctx, http.MethodPost, "/staff", toRequest(staff))
	if err != nil {
		return nil, err
	}
	return decodeStaff(raw)
}

// UpdateStaff replaces the record with the given id.
func (c *StaffClient) UpdateStaff(ctx context.Context, id int, staff domain.Staff) (*domain.Staff, error) {
	staff.ID = id
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/staff/%d", id), toRequest(staff))
	if err != nil {
		return nil, err
	}
	return decodeStaff(raw)
}

// DeleteStaff removes the record and returns it.
func (c *StaffClient) DeleteStaff(ctx context.Context, id int) (*domain.Staff, error) {
	raw, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/staff/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeStaff(raw)
}

func (c *StaffClient) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var env dataEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return env.Data, nil
	}

	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", env.Error.Message, ErrNotFound)
	case len(env.Error.Details) > 0:
		return nil, &ValidationError{Fields: env.Error.Details}
	default:
		return nil, errors.New(env.Error.Message)
	}
}

func decodeStaff(raw json.RawMessage) (*domain.Staff, error) {
	var resp dto.StaffResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode staff record: %w", err)
	}
	staff := fromResponse(resp)
	return &staff, nil
}

func toRequest(staff domain.Staff) dto.StaffRequest {
	return dto.StaffRequest{
		ID:           staff.ID,
		Name:         staff.Name,
		Email:        staff.Email,
		PhoneNumber:  staff.PhoneNumber,
		StartingDate: staff.StartingDate,
	}
}

func fromResponse(resp dto.StaffResponse) domain.Staff {
	return domain.Staff{
		ID:           resp.ID,
		Name:         resp.Name,
		Email:        resp.Email,
		PhoneNumber:  resp.PhoneNumber,
		StartingDate: resp.StartingDate,
	}
}
