package server

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Server serves the web form and the digest endpoints.
type Server interface {
	Listen(addr string) error
	Shutdown(ctx context.Context) error
	App() *fiber.App
}

// Files is the download directory as the HTTP layer sees it.
type Files interface {
	List() ([]models.FileInfo, error)
	Names() []string
	Resolve(requested string) (path string, downloadName string, err error)
}
