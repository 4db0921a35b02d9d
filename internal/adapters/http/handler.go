package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/fortune-go/internal/app"
	"github.com/randomtoy/fortune-go/internal/domain"
	"github.com/randomtoy/fortune-go/internal/ports"
)

const contentTypeHTML = "text/html; charset=utf-8"

type Handler struct {
	svc      *app.FortuneService
	pages    ports.PageStore
	basePath string
}

// NewHandler mounts routes under basePath, which is "" for the root or a
// path with a leading slash and no trailing slash.
func NewHandler(svc *app.FortuneService, pages ports.PageStore, basePath string) *Handler {
	return &Handler{svc: svc, pages: pages, basePath: basePath}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET(h.basePath+"/", h.Index)
	e.GET(h.basePath+"/api/fortune", h.Fortune)
	if h.basePath != "" {
		e.GET(h.basePath, func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, h.basePath+"/")
		})
	}
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Index(c echo.Context) error {
	raw, err := h.pages.Index(c.Request().Context())
	if err != nil {
		requestID, _ := c.Get("request_id").(string)
		slog.Error("page unavailable", "request_id", requestID, "error", err)
		return c.String(http.StatusInternalServerError, "page unavailable")
	}
	return c.Blob(http.StatusOK, contentTypeHTML, raw)
}

func (h *Handler) Fortune(c echo.Context) error {
	req := app.FortuneRequest{Extra: c.QueryParam("extra")}

	out, err := h.svc.Tell(c.Request().Context(), req)
	if err != nil {
		return configError(c)
	}

	status := http.StatusOK
	if !out.OK() {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, FortuneResponse{Fortune: out.Fortune()})
}

// configError answers a fortune request that arrived without a usable API
// key. Tell has no other error.
func configError(c echo.Context) error {
	requestID, _ := c.Get("request_id").(string)
	slog.Warn("fortune requested without api key", "request_id", requestID)
	return c.JSON(http.StatusInternalServerError, FortuneResponse{Fortune: domain.MessageAPIKeyNotConfigured})
}
