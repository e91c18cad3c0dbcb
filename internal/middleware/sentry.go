package middleware

import (
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Sentry records a transaction per request and reports 5xx responses.
// No-op when Sentry was not initialized.
func Sentry() gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub().Clone()
		c.Set("sentry_hub", hub)

		transaction := sentry.StartTransaction(
			c.Request.Context(),
			c.Request.Method+" "+c.FullPath(),
			sentry.ContinueFromRequest(c.Request),
		)
		defer func() {
			transaction.Status = sentry.HTTPtoSpanStatus(c.Writer.Status())
			transaction.Finish()
		}()

		c.Request = c.Request.WithContext(transaction.Context())
		c.Next()

		if c.Writer.Status() >= 500 {
			for _, e := range c.Errors {
				hub.CaptureException(e.Err)
			}
		}
	}
}
