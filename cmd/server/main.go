package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/harborlight/teamlens/internal/assessment"
	"github.com/harborlight/teamlens/internal/cache"
	apperrors "github.com/harborlight/teamlens/internal/errors"
	"github.com/harborlight/teamlens/internal/mailer"
	"github.com/harborlight/teamlens/internal/monitoring"
	"github.com/harborlight/teamlens/internal/profiles"
	"github.com/harborlight/teamlens/internal/questionbank"
	"github.com/harborlight/teamlens/internal/ratelimit"
	"github.com/harborlight/teamlens/internal/report"
	"github.com/harborlight/teamlens/internal/security"
	"github.com/harborlight/teamlens/internal/store"
	"github.com/harborlight/teamlens/internal/types"
)

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Authored profile tables are closed-world per dimension; a missing entry
	// is a content defect the process must not start with.
	if err := profiles.ValidateContent(); err != nil {
		slog.Error("Profile content validation failed", "error", err)
		os.Exit(1)
	}

	// Configuration from environment with defaults
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	port := getEnvOrDefault("PORT", "8080")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	dashboardSecret := getEnvOrDefault("DASHBOARD_SECRET", "change-me-in-production")
	dashboardPassword := os.Getenv("DASHBOARD_PASSWORD")
	rosterFile := os.Getenv("ROSTER_FILE")
	smtpPort, _ := strconv.Atoi(getEnvOrDefault("SMTP_PORT", "587"))

	db, err := store.NewDB(dataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := store.NewRepository(db)

	if rosterFile != "" {
		if err := seedRosterFromFile(repo, rosterFile); err != nil {
			slog.Error("Failed to seed roster", "file", rosterFile, "error", err)
			os.Exit(1)
		}
	}

	sender := mailer.NewSMTPSender(mailer.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnvOrDefault("SMTP_FROM", "reports@teamlens.local"),
	})

	redisClient := ratelimit.NewRedisClient(redisAddr, redisPassword, 0)
	defer redisClient.Close()
	limiter := ratelimit.NewRateLimiter(redisClient, ratelimit.DefaultConfig())

	auth := security.NewDashboardAuth(dashboardSecret, dashboardPassword)
	appMetrics := monitoring.NewMetrics()
	appCache := cache.New(5 * time.Minute)

	r := buildRouter(repo, sender, limiter, auth, appMetrics, appCache)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// buildRouter assembles the middleware chain and every route. Collaborators
// arrive as arguments so the exact production wiring runs under test.
func buildRouter(
	repo *store.Repository,
	sender mailer.Sender,
	limiter *ratelimit.RateLimiter,
	auth *security.DashboardAuth,
	appMetrics *monitoring.Metrics,
	appCache *cache.Cache,
) *gin.Engine {
	r := gin.New()
	r.Use(apperrors.RecoveryHandler())
	r.Use(monitoring.Middleware(appMetrics))
	r.Use(security.Headers())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(apperrors.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"metrics":   appMetrics.GetStats(),
		})
	})

	// Question bank, for clients rendering the questionnaire. Presentation
	// order is the client's business; scoring is order-independent.
	r.GET("/api/questions/:dimension", func(c *gin.Context) {
		d := questionbank.Dimension(c.Param("dimension"))
		questions := questionbank.QuestionsFor(d)
		if questions == nil {
			appErr := apperrors.NewValidationError(fmt.Sprintf("unknown dimension %q", c.Param("dimension")))
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{"dimension": d, "questions": questions})
	})

	r.POST("/api/assessments", limiter.Middleware(), func(c *gin.Context) {
		var req types.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := apperrors.NewValidationError(err.Error())
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		res, err := assessment.Evaluate(assessment.Submission{
			Identity: assessment.Identity{
				Name:      req.Name,
				Email:     req.Email,
				RoleTitle: req.RoleTitle,
				Unit:      req.Unit,
			},
			Communication: req.Communication,
			Motivation:    req.Motivation,
		})
		if err != nil {
			appErr := apperrors.ToAppError(err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		appMetrics.IncrementAssessmentsScored()
		slog.Info("Assessment scored",
			"email", res.Identity.Email,
			"comm_primary", res.Communication.Primary,
			"motiv_primary", res.Motivation.Primary)

		// Persistence failure must not discard the computed result; the
		// respondent still gets their report.
		persisted := true
		if err := repo.SaveAssessment(recordFromResult(res, req)); err != nil {
			persisted = false
			slog.Error("Failed to persist assessment", "email", res.Identity.Email, "error", err)
		} else {
			appCache.Invalidate()
		}

		c.JSON(http.StatusOK, gin.H{
			"result":    res,
			"persisted": persisted,
		})
	})

	r.GET("/api/assessments/:email", func(c *gin.Context) {
		res, appErr := fetchResult(repo, c.Param("email"))
		if appErr != nil {
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		c.JSON(http.StatusOK, res)
	})

	r.GET("/api/assessments/:email/report", func(c *gin.Context) {
		res, appErr := fetchResult(repo, c.Param("email"))
		if appErr != nil {
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		doc, err := report.Render(res)
		if err != nil {
			appErr := apperrors.NewInternalError("failed to render report", err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		appMetrics.IncrementReportsRendered()
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "teamlens-report.html"))
		c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
	})

	r.POST("/api/assessments/:email/send", func(c *gin.Context) {
		email := c.Param("email")
		res, appErr := fetchResult(repo, email)
		if appErr != nil {
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		doc, err := report.Render(res)
		if err != nil {
			appErr := apperrors.NewInternalError("failed to render report", err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		if err := sender.SendReport(ctx, email, "Your TeamLens assessment report", doc); err != nil {
			appMetrics.IncrementEmailFailures()
			appErr := apperrors.NewMailError(err)
			apperrors.LogError(c, appErr)
			// Delivery is retryable; the stored result is untouched.
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr, "retryable": true})
			return
		}

		appMetrics.IncrementReportsEmailed()
		c.JSON(http.StatusOK, gin.H{"message": "report sent", "to": email})
	})

	r.GET("/api/roster", appCache.Middleware(appMetrics, "/api/roster"), func(c *gin.Context) {
		staff, err := repo.ListRoster()
		if err != nil {
			appErr := apperrors.NewStorageError("failed to load roster", err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{"staff": staff})
	})

	r.POST("/api/dashboard/login", func(c *gin.Context) {
		var req types.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := apperrors.NewValidationError(err.Error())
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		token, err := auth.Login(req.Password, req.Unit)
		if err != nil {
			appErr := apperrors.NewUnauthorizedError(err.Error())
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	})

	r.GET("/api/dashboard", auth.Middleware(), appCache.Middleware(appMetrics, "/api/dashboard"), func(c *gin.Context) {
		// The token's unit claim scopes what this supervisor may see; an
		// empty claim is the all-units view.
		unit := c.GetString("unit")
		rows, err := repo.ListByUnit(unit)
		if err != nil {
			appErr := apperrors.NewStorageError("failed to load dashboard", err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{"unit": unit, "results": rows})
	})

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// fetchResult loads a stored record and rehydrates it into a Result,
// translating store-level conditions into the error taxonomy: not-found and
// invalid-stored-data are distinct to the caller.
func fetchResult(repo *store.Repository, email string) (*assessment.Result, *apperrors.AppError) {
	rec, err := repo.FetchByEmail(email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, apperrors.NewNotFoundError(email)
		case errors.Is(err, store.ErrInvalidRecord):
			return nil, apperrors.NewInvalidRecordError(email, err)
		default:
			return nil, apperrors.NewStorageError("failed to retrieve assessment", err)
		}
	}

	res, err := assessment.Rehydrate(
		rec.ID,
		assessment.Identity{Name: rec.Name, Email: rec.Email, RoleTitle: rec.RoleTitle, Unit: rec.Unit},
		toScoreMap(rec.CommScores),
		toScoreMap(rec.MotivScores),
		questionbank.Category(rec.CommPrimary),
		questionbank.Category(rec.CommSecondary),
		questionbank.Category(rec.MotivPrimary),
		questionbank.Category(rec.MotivSecondary),
		rec.Burnout,
		rec.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.ToAppError(err)
	}

	return res, nil
}

// recordFromResult flattens a Result into its persisted shape, including the
// per-question raw answers so external analytics never re-derive scoring.
func recordFromResult(res *assessment.Result, req types.SubmitRequest) *store.AssessmentRecord {
	raw := make(map[string]string, len(req.Communication)+len(req.Motivation))
	for id, a := range req.Communication {
		raw[id] = flattenAnswer(a)
	}
	for id, a := range req.Motivation {
		raw[id] = flattenAnswer(a)
	}

	return &store.AssessmentRecord{
		ID:             res.ID,
		Email:          res.Identity.Email,
		Name:           res.Identity.Name,
		RoleTitle:      res.Identity.RoleTitle,
		Unit:           res.Identity.Unit,
		CommScores:     fromScoreMap(res.Communication.Scores),
		MotivScores:    fromScoreMap(res.Motivation.Scores),
		CommPrimary:    string(res.Communication.Primary),
		CommSecondary:  string(res.Communication.Secondary),
		MotivPrimary:   string(res.Motivation.Primary),
		MotivSecondary: string(res.Motivation.Secondary),
		Burnout:        res.Burnout,
		RawAnswers:     raw,
		CreatedAt:      res.CreatedAt,
	}
}

func flattenAnswer(a questionbank.Answer) string {
	if a.Pick != "" {
		return a.Pick
	}
	return strconv.Itoa(a.Rating)
}

func toScoreMap(m map[string]float64) map[questionbank.Category]float64 {
	if m == nil {
		return nil
	}
	out := make(map[questionbank.Category]float64, len(m))
	for k, v := range m {
		out[questionbank.Category(k)] = v
	}
	return out
}

func fromScoreMap(m map[questionbank.Category]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

// seedRosterFromFile loads the roster JSON file and seeds the table when it
// is empty. File shape: [{"name": ..., "role_title": ..., "unit": ...}].
func seedRosterFromFile(repo *store.Repository, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read roster file: %w", err)
	}

	var entries []struct {
		Name      string `json:"name"`
		RoleTitle string `json:"role_title"`
		Unit      string `json:"unit"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse roster file: %w", err)
	}

	members := make([]store.StaffMember, 0, len(entries))
	for _, e := range entries {
		members = append(members, store.NewStaffMember(e.Name, e.RoleTitle, e.Unit))
	}

	return repo.SeedRoster(members)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
