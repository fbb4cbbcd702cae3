package httpserver

import "errors"

var (
	ErrStart          = errors.New("httpserver.errors.start")
	ErrShutdown       = errors.New("httpserver.errors.shutdown")
	ErrAlreadyRunning = errors.New("httpserver.errors.already_running")
)
