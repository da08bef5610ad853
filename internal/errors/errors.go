package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned for malformed, forged or expired credentials.
	// Verification failures are never distinguished further.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAdminRequired is returned when an authenticated caller lacks the admin role.
	ErrAdminRequired = errors.New("admin privileges required")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrSiteNotFound is returned when a site does not exist or is not owned by the caller.
	ErrSiteNotFound = errors.New("site not found")
	// ErrComponentNotFound is returned when a component does not exist in the given site.
	ErrComponentNotFound = errors.New("component not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidEmail is returned when the email does not match the accepted format.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned when the password is shorter than the minimum.
	ErrWeakPassword = errors.New("password must be at least 6 characters long")
	// ErrInvalidRole is returned when a role is not one of the enumerated values.
	ErrInvalidRole = errors.New("role must be either user or admin")
	// ErrInvalidComponentData is returned when a component payload fails typed validation.
	ErrInvalidComponentData = errors.New("invalid component data")
	// ErrEmptyUpdate is returned when an update request carries no fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrSiteNameRequired is returned when a site is created without a name.
	ErrSiteNameRequired = errors.New("site name is required")
	// ErrSelfDelete is returned when a user attempts to delete their own account.
	// It applies regardless of role.
	ErrSelfDelete = errors.New("you cannot delete your own account")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors are
// reported as an opaque internal error; the detail stays server-side.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrSiteNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SITE_NOT_FOUND")
	case errors.Is(err, ErrComponentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMPONENT_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrInvalidComponentData):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COMPONENT_DATA")
	case errors.Is(err, ErrEmptyUpdate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_UPDATE")
	case errors.Is(err, ErrSiteNameRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SITE_NAME_REQUIRED")
	case errors.Is(err, ErrSelfDelete):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_DELETE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
