// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

// DefaultPageSize is the number of prompts shown per catalog page.
const DefaultPageSize = 16

// Paginate slices items into fixed-size pages and returns the requested
// page along with the total page count and the page that was actually
// served.
//
// An empty collection still reports one (empty) page so navigation never
// sees zero total pages. Out-of-range page requests are clamped into
// [1, totalPages]; the clamped value is returned so callers can render
// consistent page controls.
func Paginate[T any](items []T, pageSize, page int) (pageItems []T, totalPages, currentPage int) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages = (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], totalPages, page
}

// PageNumber is one slot of the compact page-navigation strip: either a
// clickable page number or a non-interactive ellipsis separator.
type PageNumber struct {
	N        int
	Ellipsis bool
}

// PageNumbers computes the compact page-number strip for the given state.
//
// Up to five total pages, every page is listed. Beyond that, the strip is
// first page, an ellipsis when the window has detached from the start, a
// window of up to three pages around the current one, an ellipsis when the
// window has detached from the end, and the last page — at most seven slots
// no matter how many pages exist.
func PageNumbers(current, total int) []PageNumber {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	if total <= 5 {
		out := make([]PageNumber, 0, total)
		for i := 1; i <= total; i++ {
			out = append(out, PageNumber{N: i})
		}
		return out
	}

	out := make([]PageNumber, 0, 7)
	out = append(out, PageNumber{N: 1})

	if current > 3 {
		out = append(out, PageNumber{Ellipsis: true})
	}

	lo := current - 1
	if lo < 2 {
		lo = 2
	}
	hi := current + 1
	if hi > total-1 {
		hi = total - 1
	}
	for i := lo; i <= hi; i++ {
		out = append(out, PageNumber{N: i})
	}

	if current < total-2 {
		out = append(out, PageNumber{Ellipsis: true})
	}

	out = append(out, PageNumber{N: total})
	return out
}
