package issue

import "errors"

var (
	// -- Validation & Input --
	ErrValidation         = errors.New("missing required issue fields")
	ErrInvalidStatus      = errors.New("invalid issue status")
	ErrAfterPhotoRequired = errors.New("a repaired photo is required to resolve an issue")

	// -- Resource State --
	ErrIssueNotFound = errors.New("issue not found")
	ErrIssueResolved = errors.New("resolved issues cannot change status")
)
