package core

import (
	"fmt"
	"strings"
)

// InstitutionType classifies an institution.
type InstitutionType string

// Institution types.
const (
	InstitutionTypeUniversity       InstitutionType = "university"
	InstitutionTypeCommunityCollege InstitutionType = "community_college"
)

// ParseInstitutionType validates s as an institution type.
func ParseInstitutionType(s string) (InstitutionType, error) {
	switch t := InstitutionType(strings.ToLower(strings.TrimSpace(s))); t {
	case InstitutionTypeUniversity, InstitutionTypeCommunityCollege:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown institution type %q (want %q or %q)",
		ErrInvalidRequest, s, InstitutionTypeUniversity, InstitutionTypeCommunityCollege)
}

// Institution is a university or community college. Reference data, never mutated.
type Institution struct {
	Name     string          `json:"name" yaml:"name"`
	Type     InstitutionType `json:"type" yaml:"type"`
	Location string          `json:"location" yaml:"location"`

	Address   string   `json:"address,omitempty" yaml:"address"`
	City      string   `json:"city,omitempty" yaml:"city"`
	State     string   `json:"state,omitempty" yaml:"state"`
	ZipCode   string   `json:"zip_code,omitempty" yaml:"zip_code"`
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude"`
}

// DisplayLocation returns Location, or "City, ST" built from the address
// parts when Location is empty.
func (i Institution) DisplayLocation() string {
	if i.Location != "" {
		return i.Location
	}
	switch {
	case i.City != "" && i.State != "":
		return i.City + ", " + i.State
	case i.City != "":
		return i.City
	default:
		return i.State
	}
}

// Info returns the short record embedded in lookup results.
func (i Institution) Info() InstitutionInfo {
	return InstitutionInfo{Name: i.Name, Location: i.DisplayLocation()}
}

// InstitutionInfo is the {name, location} pair carried by result items.
type InstitutionInfo struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Course is a canonical course identifier such as "MATH200".
type Course struct {
	Identifier string `json:"identifier"`
}
