package portfolio

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Static enrichment constants for posts flagged as academic papers.
// They describe the author's affiliation, not a lookup.
const (
	academicInstitution = "Mount Kenya University"
	academicField       = "Law and Human Rights"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return validationErr("body", "malformed JSON")
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.Config.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.Config.AdminPassword)) == 1
	if !userOK || !passOK {
		a.loginLimiter.Record(c.RealIP())
		return ErrUnauthorized
	}

	token, err := a.tokens.Issue(time.Now())
	if err != nil {
		return err
	}
	a.Logger.Info("admin login", zap.String("ip", c.RealIP()))
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}

// postInput is the write-side blog post payload. Tags arrive as a
// comma-separated string and are normalized before storage; paper_type
// synthesizes the academic_info enrichment.
type postInput struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Category      string `json:"category"`
	Tags          string `json:"tags"`
	FeaturedImage string `json:"featured_image"`
	FeaturedVideo string `json:"featured_video"`
	PaperType     string `json:"paper_type"`
	Published     *bool  `json:"published"`
}

func (in *postInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return validationErr("title", "required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return validationErr("content", "required")
	}
	if strings.TrimSpace(in.Excerpt) == "" {
		return validationErr("excerpt", "required")
	}
	return nil
}

// apply copies the input onto a post, full-replace semantics. Server-
// assigned fields (id, author, created_at) are left alone.
func (in *postInput) apply(p *BlogPost, now time.Time) {
	p.Title = strings.TrimSpace(in.Title)
	p.Content = in.Content
	p.Excerpt = in.Excerpt
	p.Category = in.Category
	if p.Category == "" {
		p.Category = "general"
	}
	p.Tags = NormalizeTags(in.Tags)
	p.FeaturedImage = in.FeaturedImage
	p.FeaturedVideo = in.FeaturedVideo
	if in.PaperType != "" {
		p.AcademicInfo = &AcademicInfo{
			Type:        in.PaperType,
			Institution: academicInstitution,
			Field:       academicField,
		}
	} else {
		p.AcademicInfo = nil
	}
	p.Published = true
	if in.Published != nil {
		p.Published = *in.Published
	}
	p.UpdatedAt = now
	p.ReadingTime = ReadingTime(p.Content)
}

func (a *App) handleAdminListPosts(c echo.Context) error {
	posts, err := a.Store.ListPosts(PostFilter{IncludeUnpublished: true})
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []BlogPost{}
	}
	return c.JSON(http.StatusOK, posts)
}

func (a *App) handleAdminGetPost(c echo.Context) error {
	post, err := a.Store.GetPost(c.Param("id"), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (a *App) handleAdminCreatePost(c echo.Context) error {
	var in postInput
	if err := c.Bind(&in); err != nil {
		return validationErr("body", "malformed JSON")
	}
	if err := in.validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	post := BlogPost{
		ID:        uuid.NewString(),
		Author:    a.Config.Author,
		CreatedAt: now,
	}
	in.apply(&post, now)

	if err := a.Store.SavePost(post); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, post)
}

func (a *App) handleAdminUpdatePost(c echo.Context) error {
	var in postInput
	if err := c.Bind(&in); err != nil {
		return validationErr("body", "malformed JSON")
	}
	if err := in.validate(); err != nil {
		return err
	}

	// Full-record replace: id, author, and created_at are immutable.
	post, err := a.Store.GetPost(c.Param("id"), true)
	if err != nil {
		return err
	}
	in.apply(&post, time.Now().UTC())

	if err := a.Store.SavePost(post); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, post)
}

func (a *App) handleAdminDeletePost(c echo.Context) error {
	if err := a.Store.DeletePost(c.Param("id")); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, map[string]string{"message": "post deleted"})
}
