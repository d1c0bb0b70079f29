package locations

import "github.com/leapstack-labs/transfer/pkg/core"

// Response is the location record of one institution. Every field is always
// present; coordinates are null when unknown.
type Response struct {
	Name      string               `json:"name"`
	Type      core.InstitutionType `json:"type"`
	Location  string               `json:"location"`
	Address   string               `json:"address"`
	City      string               `json:"city"`
	State     string               `json:"state"`
	ZipCode   string               `json:"zip_code"`
	Latitude  *float64             `json:"latitude"`
	Longitude *float64             `json:"longitude"`
}

// NewResponse builds a Response from an institution record.
func NewResponse(inst *core.Institution) Response {
	return Response{
		Name:      inst.Name,
		Type:      inst.Type,
		Location:  inst.DisplayLocation(),
		Address:   inst.Address,
		City:      inst.City,
		State:     inst.State,
		ZipCode:   inst.ZipCode,
		Latitude:  inst.Latitude,
		Longitude: inst.Longitude,
	}
}
