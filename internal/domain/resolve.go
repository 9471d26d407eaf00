package domain

import "strings"

// Address is the provider-neutral subset of a geocoding response. Geocoding
// output is an inherently unreliable external signal: any of these fields may
// be empty depending on the provider and the location.
type Address struct {
	// State is the administrative region name, e.g. "Assam".
	State string
	// City is the locality name, e.g. "Guwahati".
	City string
	// District is whatever administrative-district-like field the provider
	// returned, if any.
	District string
}

// Empty reports whether no address information was extracted at all.
func (a Address) Empty() bool {
	return a.State == "" && a.City == "" && a.District == ""
}

// Resolution statuses.
const (
	// ResolutionMatched means the address resolved to a canonical district
	// of the supported state.
	ResolutionMatched = "matched"
	// ResolutionOutOfRegion means address information was recognized but the
	// location is outside the supported state, or inside it but not
	// attributable to a catalog district.
	ResolutionOutOfRegion = "out_of_region"
	// ResolutionUnknown means no usable address information was present.
	ResolutionUnknown = "unknown"
)

// Resolution is the outcome of mapping a geocoded address to a canonical
// district.
type Resolution struct {
	Status string

	// District is set when Status is ResolutionMatched.
	District District

	// City is the raw detected city name, preserved for display.
	City string
	// Region is the raw state/region name, preserved for user messaging when
	// the location is out of the supported region.
	Region string
	// DistrictName is the district-like name that resolution worked from
	// (alias-mapped city or the provider's district field).
	DistrictName string
}

// ResolveDistrict maps a geocoded address to a canonical district.
//
// Resolution order: the city name is looked up case-insensitively in the
// alias table; failing that, the provider's district field is used as-is.
// The resolved name is then matched against the catalog by declaration-order
// substring scan. The location is in scope only when the state field
// contains the supported state's name, case-insensitively.
func ResolveDistrict(addr Address, catalog *Catalog, aliases AliasTable) Resolution {
	if addr.Empty() {
		return Resolution{Status: ResolutionUnknown}
	}

	name := addr.District
	if mapped, ok := aliases.Lookup(addr.City); ok {
		name = mapped
	}

	inScope := strings.Contains(strings.ToLower(addr.State), strings.ToLower(StateName))

	if inScope {
		if d, ok := catalog.MatchName(name); ok {
			return Resolution{
				Status:       ResolutionMatched,
				District:     d,
				City:         addr.City,
				Region:       addr.State,
				DistrictName: name,
			}
		}
	}

	return Resolution{
		Status:       ResolutionOutOfRegion,
		City:         addr.City,
		Region:       addr.State,
		DistrictName: name,
	}
}
