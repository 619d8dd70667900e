package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second
	// writeSlack leaves room to write a response after the request deadline fires.
	writeSlack = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

func writeTimeout(requestTimeout time.Duration) time.Duration {
	if requestTimeout <= 0 {
		return readTimeout
	}
	return requestTimeout + writeSlack
}
