package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"beer-pong-backend/data_access"
)

type DiagnosticsController struct {
	db *data_access.MongoDB
}

func NewDiagnosticsController(db *data_access.MongoDB) *DiagnosticsController {
	return &DiagnosticsController{
		db: db,
	}
}

// TestDatabase reports backend liveness and best-effort database
// connectivity. It always answers 200; failures degrade to string fields.
func (c *DiagnosticsController) TestDatabase(ctx *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" {
		response["database_name"] = "✅ Set"
	}

	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.db.Ping(pingCtx); err != nil {
			response["database"] = "❌ Error: " + truncateError(err)
		} else {
			response["database"] = "✅ Available"
			response["connection_status"] = "Connected"

			names, err := c.db.ListCollectionNames(pingCtx)
			if err != nil {
				response["database"] = "⚠️ Connected but Error: " + truncateError(err)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
				response["database"] = "✅ Connected & Working"
			}
		}
	}

	ctx.JSON(http.StatusOK, response)
}

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > 50 {
		msg = msg[:50]
	}
	return msg
}
