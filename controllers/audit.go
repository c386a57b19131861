// controllers/audit.go
package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAuditTrail returns the append-only change log for an entity,
// optionally filtered by row key and time range. Support and dispute
// tooling is the intended consumer; there is no write surface.
func GetAuditTrail(c *gin.Context) {
	entity := c.Query("table")
	if entity == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required query parameter: 'table'")
		return
	}
	rowPK := c.Query("rowKey")

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "'from' must be RFC3339")
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "'to' must be RFC3339")
			return
		}
		to = &t
	}

	entries, err := auditSvc.Trail(entity, rowPK, from, to)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, entries)
}
