package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/constants"
)

// GetLimit reads the optional "limit" query parameter. Missing or invalid
// values fall back to defaultLimit; both are capped at MaxListLimit.
func GetLimit(c *gin.Context, defaultLimit int) int {
	if defaultLimit < constants.MinListLimit {
		defaultLimit = constants.DefaultListLimit
	}
	if defaultLimit > constants.MaxListLimit {
		defaultLimit = constants.MaxListLimit
	}

	raw, ok := c.GetQuery("limit")
	if !ok {
		return defaultLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < constants.MinListLimit {
		return defaultLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}
	return limit
}
