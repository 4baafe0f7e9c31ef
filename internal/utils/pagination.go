package utils

import (
	"net/url"
	"strconv"
)

// PageLinks computes the next/prev URLs for an offset-paginated listing.
// Each link carries every query parameter from the original request with
// offset and limit rewritten; nil means there is no page in that direction.
func PageLinks(baseURL string, params url.Values, offset, limit int, total int64) (next, prev *string) {
	if int64(offset+limit) < total {
		u := pageURL(baseURL, params, offset+limit, limit)
		next = &u
	}
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		u := pageURL(baseURL, params, prevOffset, limit)
		prev = &u
	}
	return next, prev
}

func pageURL(baseURL string, params url.Values, offset, limit int) string {
	u, _ := url.Parse(baseURL)
	q := url.Values{}
	for key, values := range params {
		if key == "offset" || key == "limit" {
			continue
		}
		q[key] = values
	}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String()
}
