package app

import (
	"go.uber.org/fx"

	"github.com/mindcare/mindcare_backend/internal/repo"
	"github.com/mindcare/mindcare_backend/internal/service/assessment"
	"github.com/mindcare/mindcare_backend/internal/service/disorder"
	"github.com/mindcare/mindcare_backend/internal/service/question"
	"github.com/mindcare/mindcare_backend/internal/service/remedy"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideDisorderService,
		ProvideAssessmentService,
		ProvideRemedyService,
		ProvideQuestionService,
	),
)

func ProvideDisorderService(db *repo.Client) disorder.Service {
	return disorder.New(db)
}

func ProvideAssessmentService(db *repo.Client) assessment.Service {
	return assessment.New(db)
}

func ProvideRemedyService(db *repo.Client) remedy.Service {
	return remedy.New(db)
}

func ProvideQuestionService(db *repo.Client) question.Service {
	return question.New(db)
}
