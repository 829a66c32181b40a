package events

import (
	"time"
)

type RefreshReason string

const (
	RefreshReasonStartup   RefreshReason = "startup"
	RefreshReasonPoll      RefreshReason = "poll"
	RefreshReasonManual    RefreshReason = "manual"
	RefreshReasonRealtime  RefreshReason = "realtime"
	RefreshReasonPostClose RefreshReason = "post_close"
)

func (r RefreshReason) IsValid() bool {
	switch r {
	case RefreshReasonStartup, RefreshReasonPoll, RefreshReasonManual, RefreshReasonRealtime, RefreshReasonPostClose:
		return true
	}
	return false
}

// RefreshTriggeredEvent asks the refresh workers to fetch, normalize and
// install a new snapshot. Events are published by the startup hook, the poll
// timer, the manual refresh endpoint, the realtime subscriber and the massive
// incident close action.
//
// Example JSON:
//
//	{
//	  "triggerId": "01HZX3NDEKTSV4RRFFQ69G5FAV",
//	  "reason": "realtime",
//	  "requestedAt": "2026-03-18T15:04:05Z",
//	  "detail": "UPDATE devices_inventory_jj"
//	}
type RefreshTriggeredEvent struct {
	TriggerID   string        `json:"triggerId"`
	Reason      RefreshReason `json:"reason"`
	RequestedAt time.Time     `json:"requestedAt"`
	Detail      string        `json:"detail,omitempty"`
}
