package domain

import "strings"

// Constraint is one facet's setting: either a concrete value, or
// unconstrained (the zero value). The UI's "all" sentinel never reaches
// this layer; boundary code maps it to the zero value.
type Constraint struct {
	value  string
	active bool
}

func Constrain(v string) Constraint { return Constraint{value: v, active: true} }

func (c Constraint) Active() bool  { return c.active }
func (c Constraint) Value() string { return c.value }

// ParseConstraint maps the wire form to a Constraint: empty or "all"
// means unconstrained.
func ParseConstraint(v string) Constraint {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "all") {
		return Constraint{}
	}
	return Constrain(v)
}

// RemoteFilter is the tri-state remote facet.
type RemoteFilter string

const (
	RemoteAll RemoteFilter = "all"
	RemoteYes RemoteFilter = "yes"
	RemoteNo  RemoteFilter = "no"
)

func ParseRemoteFilter(v string) RemoteFilter {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes":
		return RemoteYes
	case "no":
		return RemoteNo
	default:
		return RemoteAll
	}
}

// RegionTab selects which listing tab is being rendered.
type RegionTab string

const (
	TabDomestic RegionTab = "domestic"
	TabOverseas RegionTab = "overseas"
)

func ParseRegionTab(v string) RegionTab {
	if strings.EqualFold(strings.TrimSpace(v), string(TabOverseas)) {
		return TabOverseas
	}
	return TabDomestic
}

// FilterCriteria carries every facet setting for one listing query.
type FilterCriteria struct {
	Search     Constraint
	JobType    Constraint
	Category   Constraint
	Location   Constraint
	Experience Constraint
	Remote     RemoteFilter
}

// Key returns a stable identity for memoization. Constraint values are
// length-prefixed so distinct criteria can never collide.
func (c FilterCriteria) Key() string {
	var b strings.Builder
	for _, f := range []Constraint{c.Search, c.JobType, c.Category, c.Location, c.Experience} {
		if f.active {
			b.WriteString("1:")
		} else {
			b.WriteString("0:")
		}
		b.WriteString(f.value)
		b.WriteByte('\x00')
	}
	b.WriteString(string(c.Remote))
	return b.String()
}
