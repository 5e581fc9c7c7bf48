package adapters

import (
	"context"

	"surveygate/internal/eligibility/models"
	"surveygate/internal/eligibility/ports"
	settingsModels "surveygate/internal/settings/models"
)

// SettingsReader is the slice of the settings service this adapter needs.
type SettingsReader interface {
	OptionLists(ctx context.Context) (settingsModels.OptionLists, error)
}

// OptionsAdapter implements ports.OptionsLookup by calling the settings
// service in-process.
type OptionsAdapter struct {
	settings SettingsReader
}

// NewOptionsAdapter creates a new options adapter.
func NewOptionsAdapter(settings SettingsReader) ports.OptionsLookup {
	return &OptionsAdapter{settings: settings}
}

// OptionLists returns the configured profile choices in eligibility terms.
func (a *OptionsAdapter) OptionLists(ctx context.Context) (models.OptionLists, error) {
	lists, err := a.settings.OptionLists(ctx)
	if err != nil {
		return models.OptionLists{}, err
	}
	return models.OptionLists{
		Degrees:      lists.Degrees,
		Cities:       lists.Cities,
		FamilyStatus: lists.FamilyStatus,
		WorkTypes:    lists.WorkTypes,
	}, nil
}
