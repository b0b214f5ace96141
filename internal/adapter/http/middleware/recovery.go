package middleware

import (
	"log"
	"net/http"

	"gateway_reservas/pkg"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[http][recovery] recovered from panic path=%s request_id=%s panic=%v", c.Request.URL.Path, c.GetString("request_id"), recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
