package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/mindcare/mindcare_backend/config"
	"github.com/mindcare/mindcare_backend/internal/api/http/handler"
	"github.com/mindcare/mindcare_backend/internal/repo"
	entdisorder "github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/service/assessment"
	"github.com/mindcare/mindcare_backend/internal/service/disorder"
	"github.com/mindcare/mindcare_backend/internal/service/question"
	"github.com/mindcare/mindcare_backend/internal/service/remedy"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	DB            *repo.Client
	DisorderSvc   disorder.Service
	AssessmentSvc assessment.Service
	RemedySvc     remedy.Service
	QuestionSvc   question.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	disorderH := handler.NewDisorderHandler(r.p.DisorderSvc)
	assessmentH := handler.NewAssessmentHandler(r.p.AssessmentSvc)
	remedyH := handler.NewRemedyHandler(r.p.RemedySvc)
	questionH := handler.NewQuestionHandler(r.p.QuestionSvc)

	// 3. Delegate to sub-files
	r.registerDisorderRoutes(app, disorderH)
	r.registerAssessmentRoutes(app, assessmentH)
	r.registerRemedyRoutes(app, remedyH)
	r.registerQuestionRoutes(app, questionH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			// Ready when the database answers queries.
			_, err := r.p.DB.Disorder.Query().
				Where(entdisorder.ID(0)).
				Exist(c.Context())
			return err == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
