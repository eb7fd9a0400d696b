package middleware

import (
	"errors"
	"log"

	"shipdesk/internal/backend"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxNav = "NavModules"

// RequestID: id запроса в ответе и во всех исходящих вызовах к бэкенду
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(backend.RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(backend.RequestIDHeader, id)
		c.Request = c.Request.WithContext(backend.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Chrome подгружает боковое меню для роли пользователя.
// Меню не обязательно: при ошибке страница рисуется без него.
func Chrome() gin.HandlerFunc {
	return func(c *gin.Context) {
		api := API(c)
		if api == nil {
			c.Next()
			return
		}

		tree, err := api.Modules(c.Request.Context())
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			return
		case err != nil:
			log.Printf("chrome: failed to load modules: %v", err)
		default:
			c.Set(ctxNav, tree)
		}
		c.Next()
	}
}
