package models

// APIResponse is the standardized envelope every endpoint returns. The
// status code is always 200 for frontend compatibility; errors are carried
// in Status and Message.
type APIResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// AnswerData is the payload of a successful or failed query.
type AnswerData struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func Success(data interface{}, message string) APIResponse {
	return APIResponse{Status: "success", Data: data, Message: message}
}

func Error(data interface{}, message string) APIResponse {
	return APIResponse{Status: "error", Data: data, Message: message}
}
