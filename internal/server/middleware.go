package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// requestID tags the request context and the response with an id so every
// log line of one request can be correlated.
func (s *implServer) requestID(c *fiber.Ctx) error {
	id := c.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)
	ctx := logger.WithRequestID(c.UserContext(), id)
	c.SetUserContext(ctx)

	start := time.Now()
	err := c.Next()
	if err != nil {
		if herr := s.handleError(c, err); herr != nil {
			return herr
		}
	}

	s.logger.Debug(ctx, "%s %s -> %d (%s)", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
	return nil
}
