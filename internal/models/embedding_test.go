// ABOUTME: Tests for IndexEntry dimension validation
// ABOUTME: Verifies vector dimension checking for index consistency
package models

import (
	"strings"
	"testing"
)

func TestIndexEntry_ValidateDimension(t *testing.T) {
	tests := []struct {
		name        string
		entry       IndexEntry
		expectedDim int
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid dimension match",
			entry:       IndexEntry{ProductID: 1, Vector: []float64{0.1, 0.2, 0.3}},
			expectedDim: 3,
		},
		{
			name:        "nil vector",
			entry:       IndexEntry{ProductID: 2},
			expectedDim: 3,
			wantErr:     true,
			errContains: "cannot be empty",
		},
		{
			name:        "dimension mismatch",
			entry:       IndexEntry{ProductID: 3, Vector: []float64{0.1}},
			expectedDim: 3,
			wantErr:     true,
			errContains: "dimension mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.ValidateDimension(tt.expectedDim)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDimension() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
			}
		})
	}
}
