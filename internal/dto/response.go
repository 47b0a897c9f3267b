package dto

import "github.com/Eursukkul/regi-nexus/internal/models"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type AttendeeRegisteredResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	AttendeeID string `json:"attendee_id"`
	Data       any    `json:"data"`
}

// TableInsertResponse answers POST /create_event with the table written to
// and the raw backend result.
type TableInsertResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Table       string `json:"table"`
	QueryResult any    `json:"query_result"`
}

type ErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

func Success(message string, data any) SuccessResponse {
	return SuccessResponse{Status: StatusSuccess, Message: message, Data: data}
}

func ToAttendeeRegisteredResponse(attendeeID string, data any) AttendeeRegisteredResponse {
	return AttendeeRegisteredResponse{
		Status:     StatusSuccess,
		Message:    "Attendee registered successfully",
		AttendeeID: attendeeID,
		Data:       data,
	}
}

func ToTableInsertResponse(table string, result any) TableInsertResponse {
	return TableInsertResponse{
		Status:      StatusSuccess,
		Message:     "Event created successfully",
		Table:       table,
		QueryResult: result,
	}
}
