// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/studyhub/internal/app/features/auth"
	documentsfeature "github.com/dalemusser/studyhub/internal/app/features/documents"
	goalsfeature "github.com/dalemusser/studyhub/internal/app/features/goals"
	groupsfeature "github.com/dalemusser/studyhub/internal/app/features/groups"
	healthfeature "github.com/dalemusser/studyhub/internal/app/features/health"
	profilefeature "github.com/dalemusser/studyhub/internal/app/features/profile"
	sessionsfeature "github.com/dalemusser/studyhub/internal/app/features/sessions"
	usersfeature "github.com/dalemusser/studyhub/internal/app/features/users"
	sysauth "github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/storage"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// StudyHub initializes the token manager and file store, then mounts the
// JSON API: authentication, users, profile, groups, documents, study goals,
// and study sessions, all under /api, plus the /health endpoint.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := sysauth.NewTokenManager(appCfg.JWTSecret, appCfg.JWTExpiry, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	files, err := storage.NewLocal(appCfg.UploadDir, appCfg.UploadMaxBytes, logger)
	if err != nil {
		logger.Error("file store init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		// Signup and signin are the only unauthenticated API routes.
		authHandler := authfeature.NewHandler(deps.MongoDatabase, tokens, logger)
		api.Mount("/auth", authfeature.Routes(authHandler))

		usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/users", usersfeature.Routes(usersHandler, tokens))

		profileHandler := profilefeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/profile", profilefeature.Routes(profileHandler, tokens))

		groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/groups", groupsfeature.Routes(groupsHandler, tokens))

		documentsHandler := documentsfeature.NewHandler(deps.MongoDatabase, files, logger)
		api.Mount("/documents", documentsfeature.Routes(documentsHandler, tokens))

		goalsHandler := goalsfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/goals", goalsfeature.Routes(goalsHandler, tokens))

		sessionsHandler := sessionsfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/study-sessions", sessionsfeature.Routes(sessionsHandler, tokens))
	})

	return r, nil
}
