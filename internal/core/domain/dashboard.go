package domain

// Dashboard payloads are role-shaped: the /dashboard endpoint returns one of
// four mutually exclusive structures depending on the authenticated user's
// role. The wire format carries no discriminant field; consumers classify by
// which keys are present, so the field sets below are load-bearing.

// DashboardUser is the abbreviated user block embedded in every dashboard payload.
type DashboardUser struct {
	FullName  string  `json:"full_name,omitempty"`
	Role      string  `json:"role,omitempty"`
	Company   string  `json:"company"`
	ImagePath *string `json:"image_path"`
}

// ClientDashboard summarises a client's own shipments and quotations.
type ClientDashboard struct {
	User      DashboardUser       `json:"user"`
	Shipments ClientShipmentStats `json:"shipments"`
	Quotes    ClientQuoteStats    `json:"quotations"`
}

type ClientShipmentStats struct {
	OngoingCount   int64 `json:"ongoing_count"`
	CompletedCount int64 `json:"completed_count"`
}

type ClientQuoteStats struct {
	RequestedCount int64 `json:"requested_count"`
	RespondedCount int64 `json:"responded_count"`
}

// SpecialistDashboard aggregates lead, shipment, quotation, and account
// figures across the whole book of business.
type SpecialistDashboard struct {
	User      DashboardUser           `json:"user"`
	Leads     SpecialistLeadStats     `json:"leads"`
	Shipments SpecialistShipmentStats `json:"shipments"`
	Quotes    SpecialistQuoteStats    `json:"quotations"`
	Accounts  SpecialistAccountStats  `json:"accounts"`
}

type SpecialistLeadStats struct {
	QueriesCount int64 `json:"queries_count"`
	NewCount     int64 `json:"new_count"`
	RepliedCount int64 `json:"replied_count"`
}

type SpecialistShipmentStats struct {
	OngoingCount   int64 `json:"ongoing_count"`
	DeliveredCount int64 `json:"delivered_count"`
}

type SpecialistQuoteStats struct {
	NewCount       int64 `json:"new_count"`
	RespondedCount int64 `json:"responded_count"`
	AcceptedCount  int64 `json:"accepted_count"`
	DiscardedCount int64 `json:"discarded_count"`
}

type SpecialistAccountStats struct {
	ClientsCount int64 `json:"clients_count"`
}

// MarketingDashboard carries content metrics. The counts are stringified
// numbers — an upstream quirk preserved because consumers key on it.
type MarketingDashboard struct {
	User          DashboardUser `json:"user"`
	ViewsCount    string        `json:"views_count"`
	ClientsCount  string        `json:"clients_count"`
	TotalVideos   string        `json:"total_videos"`
	TotalArticles string        `json:"total_articles"`
}

// HumanResourceDashboard has no metrics yet; the message field doubles as the
// structural marker consumers classify on.
type HumanResourceDashboard struct {
	Message string `json:"message"`
}
