package handlers

import (
	"fmt"
	"strings"

	"statement-transformer/internal/services"

	"github.com/labstack/echo/v4"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}

// requestInfo collects the caller details recorded in the audit trail
func requestInfo(c echo.Context) services.RequestInfo {
	return services.RequestInfo{
		TraceID:   getTraceID(c),
		IPAddress: getClientIP(c),
		UserAgent: c.Request().UserAgent(),
	}
}
