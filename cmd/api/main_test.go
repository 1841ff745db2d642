// ABOUTME: Tests for server wiring helpers in the main package
// ABOUTME: Covers rate limiter shutdown logging

package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-composite-api/core/interfaces"
)

type recordedLog struct {
	level   string
	message string
	fields  map[string]interface{}
}

type recordingLogger struct {
	entries []recordedLog
}

func (r *recordingLogger) add(level, msg string, fields map[string]interface{}) {
	r.entries = append(r.entries, recordedLog{level: level, message: msg, fields: fields})
}

func (r *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	r.add("debug", msg, fields)
}

func (r *recordingLogger) Info(msg string, fields map[string]interface{}) {
	r.add("info", msg, fields)
}

func (r *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	r.add("warn", msg, fields)
}

func (r *recordingLogger) Error(msg string, fields map[string]interface{}) {
	r.add("error", msg, fields)
}

var _ interfaces.Logger = (*recordingLogger)(nil)

type stubLimiter struct {
	closeErr error
	closed   bool
}

func (s *stubLimiter) Allow(ctx context.Context, key string) bool { return true }
func (s *stubLimiter) Limit() int                                 { return 1 }
func (s *stubLimiter) Window() time.Duration                      { return time.Minute }

func (s *stubLimiter) Close() error {
	s.closed = true
	return s.closeErr
}

type plainLimiter struct{}

func (plainLimiter) Allow(ctx context.Context, key string) bool { return true }
func (plainLimiter) Limit() int                                 { return 1 }
func (plainLimiter) Window() time.Duration                      { return time.Minute }

func TestCloseLimiter_LogsCloseError(t *testing.T) {
	logger := &recordingLogger{}
	limiter := &stubLimiter{closeErr: errors.New("connection reset")}

	closeLimiter(limiter, logger)

	assert.True(t, limiter.closed)
	require.Len(t, logger.entries, 1)
	assert.Equal(t, "error", logger.entries[0].level)
	assert.Equal(t, "Failed to close rate limiter", logger.entries[0].message)
	assert.Equal(t, "connection reset", logger.entries[0].fields["error"])
}

func TestCloseLimiter_SilentOnSuccess(t *testing.T) {
	logger := &recordingLogger{}
	limiter := &stubLimiter{}

	closeLimiter(limiter, logger)

	assert.True(t, limiter.closed)
	assert.Empty(t, logger.entries)
}

func TestCloseLimiter_IgnoresLimitersWithoutClose(t *testing.T) {
	logger := &recordingLogger{}

	closeLimiter(plainLimiter{}, logger)
	closeLimiter(nil, logger)

	assert.Empty(t, logger.entries)
}
