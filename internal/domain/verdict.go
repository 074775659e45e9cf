package domain

// Verdict is the region classification of one job against the current
// taxonomy. The booleans are non-exclusive: a job can hit domestic and
// overseas keywords at once, and Global always wins both tabs.
type Verdict struct {
	IsDomestic bool `json:"isDomestic"`
	IsOverseas bool `json:"isOverseas"`
	IsGlobal   bool `json:"isGlobal"`
}

// RegionLabel collapses a Verdict into the audit label.
type RegionLabel string

const (
	LabelDomestic     RegionLabel = "domestic"
	LabelOverseas     RegionLabel = "overseas"
	LabelGlobal       RegionLabel = "global"
	LabelMixed        RegionLabel = "mixed"
	LabelUnclassified RegionLabel = "unclassified"
)

func (v Verdict) Label() RegionLabel {
	switch {
	case v.IsGlobal:
		return LabelGlobal
	case v.IsDomestic && v.IsOverseas:
		return LabelMixed
	case v.IsDomestic:
		return LabelDomestic
	case v.IsOverseas:
		return LabelOverseas
	default:
		return LabelUnclassified
	}
}

// InTab reports whether a job with this verdict belongs on the given tab.
func (v Verdict) InTab(tab RegionTab) bool {
	if v.IsGlobal {
		return true
	}
	if tab == TabOverseas {
		return v.IsOverseas
	}
	return v.IsDomestic
}
