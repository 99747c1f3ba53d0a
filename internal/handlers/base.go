package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// respond writes the uniform outcome envelope: success flag, human-readable
// message, plus any payload fields.
func respond(c *gin.Context, code int, message string, extra gin.H) {
	body := gin.H{"success": code < 400, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

// serverError logs the underlying failure with full detail and answers with
// the generic message only. Driver errors never reach the caller.
func serverError(c *gin.Context, message string, err error) {
	log.Printf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, message, err)
	respond(c, 500, message, nil)
}

// parseID reads a numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// msg turns a wrapped service error into a caller-facing message by dropping
// the sentinel prefix and capitalizing the remainder.
func msg(err error) string {
	if err == nil {
		return ""
	}
	m := err.Error()
	if i := strings.Index(m, ": "); i >= 0 {
		m = m[i+2:]
	}
	if m == "" {
		return m
	}
	return strings.ToUpper(m[:1]) + m[1:]
}
