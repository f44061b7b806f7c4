package fields

import "errors"

var (
	ErrInvalidFieldValue = errors.New("invalid field value")
)
