package ledger

import (
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/engine"
)

// AddMediaChannel appends a custom channel to the media plan with name-based
// starting defaults for CPL and qualified-lead percent.
func AddMediaChannel(p *domain.Project, channelID, name string) *domain.Project {
	cpl, capi := domain.ChannelDefaults(name)

	cp := p.Clone()
	cp.MediaPlan = append(cp.MediaPlan, domain.MediaChannel{
		ID:                channelID,
		Name:              name,
		AllocationPercent: 0,
		EstimatedCPL:      cpl,
		CAPIPercent:       capi,
		CAPIToAPPercent:   30,
		APToADPercent:     50,
		IsCustom:          true,
	})
	return cp
}

// MediaChannelField names one editable numeric field of a media channel.
type MediaChannelField string

const (
	MediaAllocation MediaChannelField = "allocation_percent"
	MediaCPL        MediaChannelField = "estimated_cpl"
	MediaCAPI       MediaChannelField = "capi_percent"
	MediaCAPIToAP   MediaChannelField = "capi_to_ap_percent"
	MediaAPToAD     MediaChannelField = "ap_to_ad_percent"
)

// ValidMediaChannelFields is the canonical set of accepted field names.
var ValidMediaChannelFields = map[string]bool{
	"allocation_percent": true, "estimated_cpl": true, "capi_percent": true,
	"capi_to_ap_percent": true, "ap_to_ad_percent": true,
}

// UpdateMediaChannel sets one field on the named channel. Unknown channel or
// field is a no-op returning the input unchanged.
func UpdateMediaChannel(p *domain.Project, channelID string, field MediaChannelField, value float64) *domain.Project {
	if !ValidMediaChannelFields[string(field)] {
		return p
	}

	idx := -1
	for i := range p.MediaPlan {
		if p.MediaPlan[i].ID == channelID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p
	}

	cp := p.Clone()
	ch := &cp.MediaPlan[idx]
	value = engine.Normalize(value)
	switch field {
	case MediaAllocation:
		ch.AllocationPercent = value
	case MediaCPL:
		ch.EstimatedCPL = value
	case MediaCAPI:
		ch.CAPIPercent = value
	case MediaCAPIToAP:
		ch.CAPIToAPPercent = value
	case MediaAPToAD:
		ch.APToADPercent = value
	}
	return cp
}

// RemoveMediaChannel deletes a channel from the media plan. Its performance
// ledger entry, if any, is removed with it.
func RemoveMediaChannel(p *domain.Project, channelID string) *domain.Project {
	cp := p.Clone()

	channels := cp.MediaPlan[:0]
	for _, ch := range cp.MediaPlan {
		if ch.ID != channelID {
			channels = append(channels, ch)
		}
	}
	cp.MediaPlan = channels

	perfs := cp.ChannelPerformance[:0]
	for _, perf := range cp.ChannelPerformance {
		if perf.ChannelID != channelID {
			perfs = append(perfs, perf)
		}
	}
	cp.ChannelPerformance = perfs

	return cp
}
