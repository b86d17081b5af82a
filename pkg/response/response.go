package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "sales-analytics-srv/pkg/errors"
)

// OK writes a 200 response with the given body.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Error writes an error response. HTTPError values keep their status code and
// message; anything else is surfaced as an opaque 500 so store internals never
// leak to the caller.
func Error(c *gin.Context, err error) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, ErrResp{Error: httpErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrResp{Error: "Internal server error"})
}

// PanicError writes the 500 response used by the recovery middleware.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: "Internal server error"})
}
