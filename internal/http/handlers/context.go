package handlers

import (
	"strconv"
	"strings"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Identity arrives pre-resolved from the gateway as trusted headers;
// authentication itself happens upstream.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

func getUserID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.GetHeader(headerUserID))
	if raw == "" {
		response.Unauthorized(c, "missing user identity")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.Unauthorized(c, "invalid user identity")
		return 0, false
	}
	return uint(id), true
}

func getUserRole(c *gin.Context) string {
	return strings.ToLower(strings.TrimSpace(c.GetHeader(headerUserRole)))
}

func requireRole(c *gin.Context, roles ...string) bool {
	role := getUserRole(c)
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	response.Forbidden(c, "insufficient role")
	return false
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parseUintQuery reads an optional positive integer query parameter
func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePagination clamps page and page size at the boundary
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
