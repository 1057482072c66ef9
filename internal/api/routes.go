package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all service routes
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type", requestIDHeader},
		}))
	}

	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/", h.Status)
	r.POST("/summarize", h.Summarize)
	r.POST("/generate-questions", h.GenerateQuestions)
	r.POST("/upload", h.Upload)
}
