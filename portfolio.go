// Package portfolio implements the backend for a multi-language
// personal portfolio site: public content and blog APIs plus an
// authenticated admin surface for managing posts, media uploads, and
// contact-form submissions.
package portfolio

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bkmpey/portfolio/contact"
)

// App is the central portfolio application. It wires together the
// store, resolver, cache, handlers, and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Store    *Store
	Cache    *postCache
	Resolver *Resolver
	Logger   *zap.Logger

	tokens       *TokenIssuer
	loginLimiter *LoginLimiter
	contactStore *contact.Store
}

// New creates a new App with the given configuration and logger.
func New(cfg SiteConfig, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		Config: cfg,
		Echo:   echo.New(),
		Logger: logger,
	}
}

// Start initializes the stores, seeds default content, registers
// middleware and routes, and starts the server. It blocks until the
// server exits.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr))
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init prepares everything short of listening. Split out of Start so
// tests can drive the full handler stack through httptest.
func (a *App) init() error {
	if a.Config.AdminUsername == "" || a.Config.AdminPassword == "" {
		return fmt.Errorf("portfolio: admin credentials are required")
	}
	if a.Config.TokenSecret == "" {
		return fmt.Errorf("portfolio: token secret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("portfolio: init store: %w", err)
	}
	a.Store = store

	a.Resolver = NewResolver(store)
	if err := a.Resolver.SeedDefaultContent(); err != nil {
		return fmt.Errorf("portfolio: seed content: %w", err)
	}

	a.Cache = newPostCache(store, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.tokens = NewTokenIssuer(a.Config.TokenSecret, a.Config.TokenTTL)

	contactStore, err := contact.NewStore(a.Config.ContactDatabasePath)
	if err != nil {
		return fmt.Errorf("portfolio: init contact store: %w", err)
	}
	a.contactStore = contactStore

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/uploads", a.Config.UploadsDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	api := e.Group("/api")
	api.GET("/", a.handleRoot)
	api.GET("/languages", a.handleLanguages)
	api.GET("/portfolio/:section", a.handleSection)
	api.GET("/blog", a.handleListPosts)
	api.GET("/blog/:id", a.handleGetPost)

	api.POST("/admin/login", a.handleAdminLogin)
	admin := api.Group("/admin", a.requireAdmin)
	admin.GET("/blog", a.handleAdminListPosts)
	admin.POST("/blog", a.handleAdminCreatePost)
	admin.GET("/blog/:id", a.handleAdminGetPost)
	admin.PUT("/blog/:id", a.handleAdminUpdatePost)
	admin.DELETE("/blog/:id", a.handleAdminDeletePost)
	admin.GET("/media", a.handleMediaList)
	admin.POST("/media/upload", a.handleMediaUpload)
	admin.DELETE("/media/:id", a.handleMediaDelete)

	contact.NewHandler(a.contactStore, a.Logger).RegisterRoutes(api, admin)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		a.Store.Close()
	}
	if a.contactStore != nil {
		a.contactStore.Close()
	}
	return nil
}
