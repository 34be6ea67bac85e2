package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/projsync/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "zerr with metadata",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "metadata on upgraded standard error moves to the cause",
			err:          zerr.With(errors.New("disk full"), "path", "state.json"),
			wantMessages: []string{"disk full"},
			wantMetadata: []map[string]any{{"path": "state.json"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			messages := make([]string, 0, len(entries))
			metadata := make([]map[string]any, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message())
				metadata = append(metadata, e.Metadata())
			}
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	err := zerr.With(
		zerr.Wrap(zerr.Wrap(errors.New("no such file"), "failed to read manifest"), "failed to list build units"),
		"target", "editor",
	)

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	want := "Error: failed to list build units\n" +
		"       target: editor\n" +
		"\n" +
		"  Caused by:\n" +
		"    → failed to read manifest\n" +
		"    → no such file"
	assert.Equal(t, want, got)
}

func TestFormatErrorEntries_MultilineMessage(t *testing.T) {
	got := logger.FormatErrorEntries(logger.CollectErrorEntries(errors.New("line one\nline two")))

	assert.Equal(t, "Error: line one\n       line two", got)
}
