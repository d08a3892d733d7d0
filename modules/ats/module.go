package ats

import (
	"github.com/talentgrid-io/talentgrid/modules/ats/handlers"
	"github.com/talentgrid-io/talentgrid/modules/ats/infrastructure/persistence"
	"github.com/talentgrid-io/talentgrid/modules/ats/presentation/controllers"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/outbox"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	memberships := persistence.NewMembershipRepository()
	recorder := services.NewEventRecorder(outbox.NewPublisher())

	app.RegisterServices(
		services.NewCompanyService(persistence.NewCompanyRepository(), memberships, recorder),
		services.NewJobService(persistence.NewJobRepository(), memberships, recorder),
		services.NewCandidateService(persistence.NewCandidateRepository(), memberships, recorder),
		services.NewApplicationService(persistence.NewApplicationRepository(), memberships, recorder),
		services.NewPlacementService(persistence.NewPlacementRepository(), memberships, recorder),
		services.NewJobRequirementService(persistence.NewJobRequirementRepository()),
		services.NewPreScreenQuestionService(persistence.NewPreScreenQuestionRepository()),
	)
	app.RegisterControllers(
		controllers.NewCompaniesController(app),
		controllers.NewJobsController(app),
		controllers.NewCandidatesController(app),
		controllers.NewApplicationsController(app),
		controllers.NewPlacementsController(app),
		controllers.NewJobRequirementsController(app),
		controllers.NewPreScreenQuestionsController(app),
	)

	handlers.RegisterDomainEventLogger(app.EventPublisher())
	return nil
}

func (m *Module) Name() string {
	return "ats"
}
