package api

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dabramov/search-server/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidQuery     ErrorCode = "INVALID_QUERY"
	ErrorCodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrorCodeDocumentExists   ErrorCode = "DOCUMENT_ALREADY_EXISTS"
	ErrorCodeRateLimited      ErrorCode = "RATE_LIMITED"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// APIError is the standardized error response envelope.
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// SendEngineError maps an engine error onto the HTTP surface.
func SendEngineError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrUnknownID) || stderrors.Is(err, errors.ErrIndexOutOfRange):
		SendError(c, http.StatusNotFound, ErrorCodeDocumentNotFound, err.Error())
	case stderrors.Is(err, errors.ErrDuplicateID):
		SendError(c, http.StatusConflict, ErrorCodeDocumentExists, err.Error())
	case stderrors.Is(err, errors.ErrInvalidQueryChar),
		stderrors.Is(err, errors.ErrInvalidMinus),
		stderrors.Is(err, errors.ErrEmptyQueryWord):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
	case stderrors.Is(err, errors.ErrNegativeID) || stderrors.Is(err, errors.ErrInvalidDocChar):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
	}
}
