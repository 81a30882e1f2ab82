package dto

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBatchInProgress = "BATCH_IN_PROGRESS"
	ErrCodeInternal        = "INTERNAL"
	ErrCodeBadRequest      = "BAD_REQUEST"
)
