// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCatalog(t *testing.T) {
	samples := sampleCatalog()
	require.Len(t, samples, 10)

	isbns := map[string]bool{}
	for _, author := range samples {
		require.NotNil(t, author.BirthDate, author.Name)
		require.Len(t, author.Books, 1)
		isbns[author.Books[0].ISBN] = true
	}
	assert.Len(t, isbns, 10)

	assert.Nil(t, samples[6].DateOfDeath, "J.K. Rowling is living")
	assert.Equal(t, "1775-12-16", samples[0].BirthDate.Format("2006-01-02"))
}
