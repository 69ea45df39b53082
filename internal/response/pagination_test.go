package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContextWithQuery(t *testing.T, query string) *gin.Context {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/keys?"+query, nil)
	return c
}

// TestParsePageParams tests defaults, clamping and bad input
func TestParsePageParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, DefaultPageSize},
		{"explicit", "page=3&limit=20", 3, 20},
		{"limit clamped to max", "limit=5000", 1, MaxPageSize},
		{"zero page", "page=0", 1, DefaultPageSize},
		{"negative limit", "limit=-5", 1, DefaultPageSize},
		{"non-numeric", "page=abc&limit=xyz", 1, DefaultPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := ParsePageParams(testContextWithQuery(t, tc.query))
			assert.Equal(t, tc.wantPage, params.Page)
			assert.Equal(t, tc.wantLimit, params.Limit)
		})
	}
}

// TestPageParams_Offset tests row offset math
func TestPageParams_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PageParams{Page: 1, Limit: 50}.Offset())
	assert.Equal(t, 100, PageParams{Page: 3, Limit: 50}.Offset())
}
