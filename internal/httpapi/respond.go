package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adilet/learnloop/internal/guard"
	"github.com/adilet/learnloop/internal/store"
)

// fail maps domain errors onto HTTP statuses. Generation outages are a
// 503 so clients can retry; everything unexpected is a 500 with the
// detail kept in the server log.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, guard.ErrGenerationFailed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content generation is temporarily unavailable"})
	default:
		s.log.Errorw("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// pathUUID parses a :param as a UUID, answering 400 itself on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
