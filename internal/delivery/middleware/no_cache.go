package middleware

import "github.com/labstack/echo/v4"

// NoCache marks every response as non-cacheable. Responses carry session-bound data.
func NoCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		header.Set("Pragma", "no-cache")
		header.Set("Expires", "0")

		return next(c)
	}
}
