package inbound

import (
	"github.com/shandysiswandi/mailbite/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/", end.Status)
	r.GET("/health", end.Health)
	r.GET("/test-email", end.TestEmail)
	r.POST("/submit-function", end.Submit)
}
