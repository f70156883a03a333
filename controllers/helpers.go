package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" is required", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, "Validation failed (numeric string is expected)", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// BindJSON decodes the request body into obj. An empty body leaves obj untouched.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, "invalid json: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
