// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookshelf/pkg/slice"
)

func TestCount(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, 2, slice.Count([]int{1, 2, 3, 4}, even))
	assert.Equal(t, 0, slice.Count(nil, even))
}

func TestIndexBy(t *testing.T) {
	index := slice.IndexBy([]string{"Emma", "emma", "Persuasion"}, strings.ToLower)

	assert.Len(t, index, 2)
	assert.Equal(t, "emma", index["emma"])
	assert.Equal(t, "Persuasion", index["persuasion"])
}
