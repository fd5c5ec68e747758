package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/processor"
)

//go:embed templates
var templatesFS embed.FS

type implServer struct {
	app       *fiber.App
	processor processor.Processor
	files     Files
	downloads string
	logger    logger.Logger
}

// New builds the fiber app and registers every route.
func New(cfg *config.Config, proc processor.Processor, files Files, log logger.Logger) (Server, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")

	s := &implServer{
		processor: proc,
		files:     files,
		downloads: cfg.Paths.Downloads,
		logger:    log,
	}
	s.app = fiber.New(fiber.Config{
		Views:                 engine,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.routes()
	return s, nil
}

func (s *implServer) routes() {
	s.app.Use(s.requestID)

	s.app.Get("/", s.index)
	s.app.Post("/summarize", s.summarize)
	s.app.Get("/download/*", s.download)
	s.app.Get("/list_files", s.listFiles)
	s.app.Post("/download_direct", s.downloadDirect)
}

func (s *implServer) Listen(addr string) error {
	s.logger.Info(context.Background(), "HTTP server listening on %s", addr)
	return s.app.Listen(addr)
}

func (s *implServer) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *implServer) App() *fiber.App {
	return s.app
}

// handleError renders errors that escape a handler as {error}.
func (s *implServer) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		s.logger.Error(c.UserContext(), "Unhandled error on %s: %v", c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
