package httpapi

import "jobboard-engine/internal/domain"

// displayLabels maps the classification enum to what the admin screens
// show. Presentation only; nothing below httpapi sees these strings.
var displayLabels = map[domain.RegionLabel]string{
	domain.LabelDomestic:     "国内",
	domain.LabelOverseas:     "海外",
	domain.LabelGlobal:       "全球",
	domain.LabelMixed:        "混合",
	domain.LabelUnclassified: "未分类",
}

func displayLabel(l domain.RegionLabel) string {
	if s, ok := displayLabels[l]; ok {
		return s
	}
	return string(l)
}
