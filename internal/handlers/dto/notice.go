package dto

// EventPayload данные createEvent / updateEvent
type EventPayload struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Classroom   string `json:"classroom" binding:"required"`
	Date        string `json:"date,omitempty"`
}

// ReportPayload данные createReport / updateReport
type ReportPayload struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	Classroom string `json:"classroom" binding:"required"`
	StudentID string `json:"studentId,omitempty"`
}
