// Package server exposes job submission and previews over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/kpango/glg"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/lo"

	"github.com/gucio321/plotview/pkg/gcode"
	"github.com/gucio321/plotview/pkg/preview"
	"github.com/gucio321/plotview/pkg/render"
	"github.com/gucio321/plotview/pkg/workspace"
)

const (
	// previewLines is how many lines of a submitted job are echoed back.
	previewLines = 5
	bodyLimit    = "8M"

	statusSuccess = "success"
	statusError   = "error"

	jobSentMessage = "Job sent to plotter"
	noGCodeMessage = "No G-code provided"
)

// JobRequest is the body of job submissions and preview requests.
type JobRequest struct {
	GCode string `json:"gcode"`
}

// JobResponse acknowledges a submitted job.
type JobResponse struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Preview  string          `json:"preview"`
	JobID    string          `json:"job_id,omitempty"`
	Commands int             `json:"commands"`
	Warnings []string        `json:"warnings"`
	Bounds   string          `json:"bounds"`
	Summary  preview.Summary `json:"summary"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Server handles the HTTP API.
type Server struct {
	echo    *echo.Echo
	options preview.Options
	palette render.Palette
}

// New creates a server laying previews out with opts.
func New(opts preview.Options, palette render.Palette) *Server {
	s := &Server{
		echo:    echo.New(),
		options: opts,
		palette: palette,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.BodyLimit(bodyLimit))

	api := s.echo.Group("/api")
	api.GET("/health", s.health)
	api.GET("/workspaces", s.workspaces)
	api.POST("/send_job", s.sendJob)
	api.POST("/preview", s.preview)

	return s
}

// Handler returns the server as a http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	glg.Infof("listening on %s", addr)

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving on %s: %w", addr, err)
	}

	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) workspaces(c echo.Context) error {
	list, err := workspace.List()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

func (s *Server) sendJob(c echo.Context) error {
	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return failure(c, http.StatusBadRequest, err)
	}

	resp := JobResponse{
		Status:   statusSuccess,
		Message:  jobSentMessage,
		Preview:  previewText(req.GCode),
		Warnings: []string{},
		Bounds:   preview.BoundsLabel(gcode.EmptyBoundingBox()),
	}

	if req.GCode == "" {
		return c.JSON(http.StatusOK, resp)
	}

	program, err := gcode.ParseString(req.GCode)
	if err != nil {
		glg.Warnf("rejecting job: %v", err)
		return failure(c, http.StatusBadRequest, err)
	}

	resp.JobID = uuid.NewString()
	resp.Commands = len(program.Commands)
	resp.Bounds = preview.BoundsLabel(program.Bounds())
	resp.Summary = preview.Summarize(program, s.options.PenUpZ)
	resp.Warnings = lo.Map(program.Warnings, func(w gcode.Warning, _ int) string {
		return w.String()
	})

	glg.Infof("job %s: %d commands, %d warnings", resp.JobID, resp.Commands, len(resp.Warnings))

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) preview(c echo.Context) error {
	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return failure(c, http.StatusBadRequest, err)
	}

	opts := s.options
	if name := c.QueryParam("workspace"); name != "" {
		w, err := workspace.Get(name)
		if err != nil {
			return failure(c, http.StatusBadRequest, err)
		}

		opts = w.Options()
	}

	palette := s.palette
	if name := c.QueryParam("palette"); name != "" {
		p, err := render.ParsePalette(name)
		if err != nil {
			return failure(c, http.StatusBadRequest, err)
		}

		palette = p
	}

	program, err := gcode.ParseString(req.GCode)
	if err != nil {
		return failure(c, http.StatusBadRequest, err)
	}

	scene, err := preview.Build(program, opts)
	if err != nil {
		return failure(c, http.StatusUnprocessableEntity, err)
	}

	var buf bytes.Buffer
	if c.QueryParam("format") == "png" {
		if err := render.WritePNG(&buf, scene, program.End(), palette); err != nil {
			return err
		}

		return c.Blob(http.StatusOK, "image/png", buf.Bytes())
	}

	if err := render.SVG(&buf, scene, program.End(), palette); err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func failure(c echo.Context, code int, err error) error {
	return c.JSON(code, errorResponse{Status: statusError, Message: err.Error()})
}

// previewText echoes the first lines of a job.
func previewText(text string) string {
	if text == "" {
		return noGCodeMessage
	}

	lines := strings.Split(text, "\n")
	return strings.Join(lo.Subset(lines, 0, previewLines), "\n") + "..."
}
