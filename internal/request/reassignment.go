package request

type SelectedEntityInput struct {
	ID          string `json:"id" yaml:"id" validate:"required,min=1,max=255"`
	DisplayName string `json:"display_name" yaml:"display_name" validate:"max=500"`
	// CurrentStationID and StationID name the same thing; older callers send station_id.
	CurrentStationID string `json:"current_station_id,omitempty" yaml:"current_station_id,omitempty" validate:"max=255"`
	StationID        string `json:"station_id,omitempty" yaml:"station_id,omitempty" validate:"max=255"`
}

type BatchReassignRequest struct {
	SelectedEntities []SelectedEntityInput `json:"selected_entities" yaml:"selected_entities" validate:"required,min=1,dive"`
	TargetStationID  string                `json:"target_station_id" yaml:"target_station_id" validate:"required,min=1,max=255"`
	EffectiveDate    string                `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
	Remarks          string                `json:"remarks" yaml:"remarks" validate:"required,max=2000"`
}
