package modules

import (
	"github.com/talentgrid-io/talentgrid/modules/ats"
	"github.com/talentgrid-io/talentgrid/pkg/application"
)

var BuiltInModules = []application.Module{
	ats.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	if err := application.Load(app, BuiltInModules...); err != nil {
		return err
	}
	return application.Load(app, externalModules...)
}
