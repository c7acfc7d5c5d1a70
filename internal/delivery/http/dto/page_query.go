package dto

import (
	"strconv"
	"strings"

	"skill-manager/internal/domain"
	"skill-manager/internal/store"
)

// ParsePage reads the page and size query values, keeping def for the
// ones that are absent.
func ParsePage(rawPage, rawSize string, def store.Page) (store.Page, error) {
	p := def
	if s := strings.TrimSpace(rawPage); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return store.Page{}, domain.Invalid("page", "must be a non-negative integer")
		}
		p.Number = n
	}
	if s := strings.TrimSpace(rawSize); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return store.Page{}, domain.Invalid("size", "must be a non-negative integer")
		}
		p.Size = n
	}
	return p, nil
}
