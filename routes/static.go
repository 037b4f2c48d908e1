package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"servicehub/utils"

	"github.com/gin-gonic/gin"
)

// apiPrefixes never fall through to the single-page app.
var apiPrefixes = []string{"/api", "/services", "/my-services", "/bookings", "/health"}

func isAPIPath(path string) bool {
	for _, prefix := range apiPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// RegisterSPA serves files under dir and falls back to dir/index.html for
// unmatched GETs outside the API. Everything else gets a JSON 404.
func RegisterSPA(r *gin.Engine, dir string) {
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || c.Request.Method != http.MethodGet || isAPIPath(path) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: "Route not found", Error: utils.KindNotFound})
			return
		}

		candidate := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
