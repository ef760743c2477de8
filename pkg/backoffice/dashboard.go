package backoffice

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnrecognizedDashboard is returned when a dashboard payload matches none
// of the known shapes. Callers must render an explicit invalid-data state, not
// guess.
var ErrUnrecognizedDashboard = errors.New("dashboard payload matches no known shape")

// DashboardKind tags which variant a classified payload holds.
type DashboardKind int

const (
	DashboardUnknown DashboardKind = iota
	DashboardClient
	DashboardAccountSpecialist
	DashboardMarketing
	DashboardHumanResource
)

func (k DashboardKind) String() string {
	switch k {
	case DashboardClient:
		return "client"
	case DashboardAccountSpecialist:
		return "account_specialist"
	case DashboardMarketing:
		return "marketing"
	case DashboardHumanResource:
		return "human_resource"
	default:
		return "unknown"
	}
}

// DashboardUser is the abbreviated user block embedded in dashboard payloads.
type DashboardUser struct {
	FullName  string  `json:"full_name,omitempty"`
	Role      string  `json:"role,omitempty"`
	Company   string  `json:"company"`
	ImagePath *string `json:"image_path"`
}

type ClientDashboard struct {
	User      DashboardUser `json:"user"`
	Shipments struct {
		OngoingCount   int64 `json:"ongoing_count"`
		CompletedCount int64 `json:"completed_count"`
	} `json:"shipments"`
	Quotations struct {
		RequestedCount int64 `json:"requested_count"`
		RespondedCount int64 `json:"responded_count"`
	} `json:"quotations"`
}

type AccountSpecialistDashboard struct {
	User  DashboardUser `json:"user"`
	Leads struct {
		QueriesCount int64 `json:"queries_count"`
		NewCount     int64 `json:"new_count"`
		RepliedCount int64 `json:"replied_count"`
	} `json:"leads"`
	Shipments struct {
		OngoingCount   int64 `json:"ongoing_count"`
		DeliveredCount int64 `json:"delivered_count"`
	} `json:"shipments"`
	Quotations struct {
		NewCount       int64 `json:"new_count"`
		RespondedCount int64 `json:"responded_count"`
		AcceptedCount  int64 `json:"accepted_count"`
		DiscardedCount int64 `json:"discarded_count"`
	} `json:"quotations"`
	Accounts struct {
		ClientsCount int64 `json:"clients_count"`
	} `json:"accounts"`
}

// MarketingDashboard counts arrive as stringified numbers on the wire.
type MarketingDashboard struct {
	User          DashboardUser `json:"user"`
	ViewsCount    string        `json:"views_count"`
	ClientsCount  string        `json:"clients_count"`
	TotalVideos   string        `json:"total_videos"`
	TotalArticles string        `json:"total_articles"`
}

type HumanResourceDashboard struct {
	Message string `json:"message"`
}

// Dashboard is the classified payload: Kind names the variant and exactly one
// of the variant fields is non-nil.
type Dashboard struct {
	Kind              DashboardKind
	Client            *ClientDashboard
	AccountSpecialist *AccountSpecialistDashboard
	Marketing         *MarketingDashboard
	HumanResource     *HumanResourceDashboard
}

// ClassifyDashboard decodes a raw dashboard payload into its tagged variant.
// The wire format has no discriminant field, so variants are probed
// structurally in a fixed order: client, account specialist, marketing, human
// resource. A payload matching none yields ErrUnrecognizedDashboard.
func ClassifyDashboard(raw json.RawMessage) (Dashboard, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return Dashboard{}, fmt.Errorf("decode dashboard payload: %w", err)
	}

	switch {
	case isClientShape(keys):
		var d ClientDashboard
		if err := json.Unmarshal(raw, &d); err != nil {
			return Dashboard{}, fmt.Errorf("decode client dashboard: %w", err)
		}
		return Dashboard{Kind: DashboardClient, Client: &d}, nil

	case hasKeys(keys, "leads", "accounts"):
		var d AccountSpecialistDashboard
		if err := json.Unmarshal(raw, &d); err != nil {
			return Dashboard{}, fmt.Errorf("decode account specialist dashboard: %w", err)
		}
		return Dashboard{Kind: DashboardAccountSpecialist, AccountSpecialist: &d}, nil

	case hasKeys(keys, "views_count", "total_videos", "total_articles"):
		var d MarketingDashboard
		if err := json.Unmarshal(raw, &d); err != nil {
			return Dashboard{}, fmt.Errorf("decode marketing dashboard: %w", err)
		}
		return Dashboard{Kind: DashboardMarketing, Marketing: &d}, nil

	case hasKeys(keys, "message") && !hasKeys(keys, "shipments") && !hasKeys(keys, "leads"):
		var d HumanResourceDashboard
		if err := json.Unmarshal(raw, &d); err != nil {
			return Dashboard{}, fmt.Errorf("decode human resource dashboard: %w", err)
		}
		return Dashboard{Kind: DashboardHumanResource, HumanResource: &d}, nil
	}

	return Dashboard{}, ErrUnrecognizedDashboard
}

// isClientShape requires shipments and quotations keys, with the client count
// fields inside shipments — the account-specialist payload also carries a
// shipments block, but with a different field set.
func isClientShape(keys map[string]json.RawMessage) bool {
	if !hasKeys(keys, "shipments", "quotations") {
		return false
	}
	var shipments map[string]json.RawMessage
	if err := json.Unmarshal(keys["shipments"], &shipments); err != nil {
		return false
	}
	return hasKeys(shipments, "ongoing_count", "completed_count")
}

func hasKeys(m map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
