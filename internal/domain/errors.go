package domain

import "errors"

var (
	ErrInterviewFinished   = errors.New("interview already finished")
	ErrSummaryNotAvailable = errors.New("summary not available")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrAPIKeyMissing       = errors.New("api key not configured")
)
