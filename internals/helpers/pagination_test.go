// internals/helpers/pagination_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseFor(t *testing.T, target string) Pagination {
	t.Helper()

	var got Pagination
	app := fiber.New()
	app.Get("/records", func(c *fiber.Ctx) error {
		got = ParsePagination(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   Pagination
	}{
		{"absent", "/records", Pagination{}},
		{"take and skip", "/records?take=10&skip=20", Pagination{Take: 10, Skip: 20, Enabled: true}},
		{"limit offset aliases", "/records?limit=5&offset=15", Pagination{Take: 5, Skip: 15, Enabled: true}},
		{"skip only defaults take", "/records?skip=3", Pagination{Take: DefaultTake, Skip: 3, Enabled: true}},
		{"take capped", "/records?take=100000", Pagination{Take: MaxTake, Skip: 0, Enabled: true}},
		{"garbage falls back", "/records?take=abc&skip=-4", Pagination{Take: DefaultTake, Skip: 0, Enabled: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseFor(t, tc.target); got != tc.want {
				t.Fatalf("ParsePagination(%q) = %+v, want %+v", tc.target, got, tc.want)
			}
		})
	}
}
