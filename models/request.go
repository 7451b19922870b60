package models

// QuestionRequest is the body of POST /api/v1/query.
type QuestionRequest struct {
	Query string `json:"query"`
}
