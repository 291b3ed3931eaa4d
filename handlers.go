package portfolio

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bkmpey/portfolio/markdown"
)

func (a *App) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": a.Config.Name + " API",
	})
}

func (a *App) handleLanguages(c echo.Context) error {
	return c.JSON(http.StatusOK, Languages)
}

// handleSection serves a localized content bundle. A missing or
// unknown lang parameter resolves to English.
func (a *App) handleSection(c echo.Context) error {
	bundle, err := a.Resolver.Resolve(c.Param("section"), c.QueryParam("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bundle)
}

// defaultListLimit caps public blog listings when the caller does not
// ask for a limit.
const defaultListLimit = 50

func (a *App) handleListPosts(c echo.Context) error {
	filter := PostFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Limit:    defaultListLimit,
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return validationErr("limit", "must be a positive integer")
		}
		filter.Limit = limit
	}
	posts, err := a.Cache.ListPosts(filter)
	if err != nil {
		return err
	}
	summaries := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.Summary())
	}
	return c.JSON(http.StatusOK, summaries)
}

// postDetail is the single-post response: the stored record plus the
// rendered body.
type postDetail struct {
	BlogPost
	ContentHTML string `json:"content_html"`
}

func (a *App) handleGetPost(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postDetail{
		BlogPost:    post,
		ContentHTML: markdown.Render(post.Content),
	})
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

// httpErrorHandler maps the error taxonomy to JSON responses in the
// {"detail": ...} envelope the SPA expects.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := "internal server error"

	var ve *ValidationError
	var he *echo.HTTPError
	switch {
	case errors.Is(err, ErrNotFound):
		code, detail = http.StatusNotFound, "not found"
	case errors.Is(err, ErrUnauthorized):
		code, detail = http.StatusUnauthorized, "unauthorized"
	case errors.As(err, &ve):
		code, detail = http.StatusBadRequest, ve.Error()
	case errors.As(err, &he):
		code = he.Code
		detail = fmt.Sprintf("%v", he.Message)
	}

	if code >= 500 {
		a.Logger.Error("server error",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	if jsonErr := c.JSON(code, map[string]string{"detail": detail}); jsonErr != nil {
		a.Logger.Error("write error response", zap.Error(jsonErr))
	}
}
