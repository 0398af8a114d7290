// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{"zero", Options{}, Options{MaxConns: 10, MinConns: 0, StatementTimeout: 30 * time.Second}},
		{"explicit", Options{MaxConns: 4, MinConns: 2, StatementTimeout: time.Second}, Options{MaxConns: 4, MinConns: 2, StatementTimeout: time.Second}},
		{"min above max", Options{MaxConns: 2, MinConns: 5}, Options{MaxConns: 2, MinConns: 2, StatementTimeout: 30 * time.Second}},
		{"negative min", Options{MaxConns: 3, MinConns: -1}, Options{MaxConns: 3, MinConns: 0, StatementTimeout: 30 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}

func TestOptions_StatementTimeoutSQL(t *testing.T) {
	options := Options{StatementTimeout: 1500 * time.Millisecond}
	assert.Equal(t, "SET statement_timeout = 1500", options.statementTimeoutSQL())
}
