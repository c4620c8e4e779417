package ledger

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAlreadyAnswered  = errors.New("question already has advice")
)
