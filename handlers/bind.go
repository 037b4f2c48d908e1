package handlers

import (
	"errors"
	"io"

	"servicehub/utils"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the body into obj. An empty body leaves obj at its zero value.
func bindJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return utils.NewInvalidInput("Invalid request body: " + err.Error())
	}
	return nil
}
