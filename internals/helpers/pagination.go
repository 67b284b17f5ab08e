package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultTake = 25
	MaxTake     = 200
)

// Pagination carries take/skip parsed from the query string.
// Enabled=false means the caller did not ask for paging at all.
type Pagination struct {
	Take    int
	Skip    int
	Enabled bool
}

// ParsePagination reads take/skip (limit/offset accepted as aliases).
func ParsePagination(c *fiber.Ctx) Pagination {
	takeRaw := strings.TrimSpace(firstNonEmpty(c.Query("take"), c.Query("limit")))
	skipRaw := strings.TrimSpace(firstNonEmpty(c.Query("skip"), c.Query("offset")))

	if takeRaw == "" && skipRaw == "" {
		return Pagination{}
	}

	take := DefaultTake
	if n, err := strconv.Atoi(takeRaw); err == nil && n > 0 {
		take = n
	}
	if take > MaxTake {
		take = MaxTake
	}

	skip := 0
	if n, err := strconv.Atoi(skipRaw); err == nil && n > 0 {
		skip = n
	}

	return Pagination{Take: take, Skip: skip, Enabled: true}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
