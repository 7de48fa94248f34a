package fault_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/adrianliechti/briefing/pkg/fault"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", fault.Validation("parse request", "documentName is required"), http.StatusBadRequest},
		{"dependency", fault.Dependency("upload", errors.New("boom")), http.StatusInternalServerError},
		{"parse", fault.Parse("summary", errors.New("no tags")), http.StatusInternalServerError},
		{"render", fault.Render("export", errors.New("chrome")), http.StatusInternalServerError},
		{"untagged", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, fault.Status(tt.err))
		})
	}
}

func TestWrapKeepsInnerKind(t *testing.T) {
	inner := fault.Parse("summary", errors.New("missing <Summary>"))
	outer := fault.Dependency("summarize", fmt.Errorf("llm: %w", inner))

	require.Equal(t, fault.KindParse, fault.KindOf(outer))
}

func TestErrorMessage(t *testing.T) {
	err := fault.Validation("parse request", "documentName is required", "audioFiles must be an array")
	require.Equal(t, "parse request: documentName is required; audioFiles must be an array", err.Error())

	err = fault.Dependency("upload", context.DeadlineExceeded)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, "upload: context deadline exceeded", err.Error())
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, fault.Dependency("upload", nil))
}
