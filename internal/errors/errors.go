package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeContext       ErrorType = "CONTEXT"
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches two AppErrors by type and message, so errors.Is works
// against the sentinel values below even after WithError.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Context errors
var (
	ErrMissingPRContext = NewAppError(TypeContext, "Not running in a pull request context", nil).
		WithSuggestion("Trigger the workflow on pull_request events or pass --pr-number")
)

// Configuration errors
var (
	ErrTokenMissing = NewAppError(TypeConfiguration, "VCS token is missing", nil).
			WithSuggestion("Set the GITHUB_TOKEN environment variable")

	ErrNoProviderConfigured = NewAppError(TypeConfiguration, "no usable provider configuration", nil).
				WithSuggestion("Set OPENAI_API_KEY or ANTHROPIC_API_KEY")

	ErrRepositoryMissing = NewAppError(TypeConfiguration, "Repository is not specified", nil).
				WithSuggestion("Set GITHUB_REPOSITORY to owner/repo or pass --repo")
)

// AI errors
var (
	ErrEmptyAIResponse = NewAppError(TypeAI, "provider response carried no usable text", nil).
				WithSuggestion("This is likely a temporary issue, please try again")

	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your API key configuration")
)

// VCS errors
var (
	ErrListFiles = NewAppError(TypeVCS, "failed to list changed files", nil).
			WithSuggestion("Check repository access and that the pull request exists")

	ErrGetPR = NewAppError(TypeVCS, "failed to get pull request", nil).
			WithSuggestion("Check repository access and that the pull request exists")

	ErrUpdatePR = NewAppError(TypeVCS, "failed to update pull request description", nil).
			WithSuggestion("Check your token has write permission on pull requests")
)
