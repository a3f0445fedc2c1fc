// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image"

	"cogentcore.org/flags/region"
)

// Item is one country of a [Picker].
type Item struct {

	// Code is the upper case two letter ISO code of the country.
	Code string

	// Label is the name shown for the country.
	Label string

	// Region is the region of the country.
	Region region.Region

	// Image is the flag of the country, which is nil if
	// there is no flag for the configured size.
	Image image.Image
}

// itemList is an ordered list of items with an index from
// country code to position.
type itemList struct {
	values  []Item
	indexes map[string]int
}

func (il *itemList) set(items []Item) {
	il.values = items
	il.updateIndexes()
}

func (il *itemList) reset() {
	il.values = nil
	il.indexes = nil
}

func (il *itemList) updateIndexes() {
	il.indexes = make(map[string]int, len(il.values))
	for i, it := range il.values {
		il.indexes[it.Code] = i
	}
}

// index returns the position of the given code, or -1.
func (il *itemList) index(code string) int {
	if i, ok := il.indexes[code]; ok {
		return i
	}
	return -1
}

// deleteFunc removes all items for which del returns true,
// keeping the order of the others, and returns the removed items.
func (il *itemList) deleteFunc(del func(it Item) bool) []Item {
	var kept, removed []Item
	for _, it := range il.values {
		if del(it) {
			removed = append(removed, it)
		} else {
			kept = append(kept, it)
		}
	}
	if len(removed) > 0 {
		il.set(kept)
	}
	return removed
}
