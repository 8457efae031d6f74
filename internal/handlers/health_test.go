package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/classlink/internal/services"
)

func TestHealth(t *testing.T) {
	cases := map[string]struct {
		checks map[string]services.Pinger
		code   int
		want   map[string]string
	}{
		"all up": {
			checks: map[string]services.Pinger{"database": fakePinger{}, "redis": fakePinger{}},
			code:   http.StatusOK,
			want:   map[string]string{"database": "ok", "redis": "ok"},
		},
		"redis down": {
			checks: map[string]services.Pinger{"database": fakePinger{}, "redis": fakePinger{err: errStore}},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"database": "ok", "redis": errStore.Error()},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.GET("/healthz", NewHealthHandler(tc.checks).Health)

			rec := doJSON(r, http.MethodGet, "/healthz", nil, "")
			require.Equal(t, tc.code, rec.Code)

			var resp struct {
				Checks map[string]string `json:"checks"`
			}
			decode(t, rec, &resp)
			assert.Equal(t, tc.want, resp.Checks)
		})
	}
}
