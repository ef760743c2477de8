package backoffice

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestClassifyDashboard_Client(t *testing.T) {
	raw := json.RawMessage(`{
		"user": {"full_name": "John Doe", "company": "Acme Freight", "image_path": null},
		"shipments": {"ongoing_count": 1, "completed_count": 2},
		"quotations": {"requested_count": 1, "responded_count": 0}
	}`)

	d, err := ClassifyDashboard(raw)
	if err != nil {
		t.Fatalf("ClassifyDashboard returned error: %v", err)
	}
	if d.Kind != DashboardClient || d.Client == nil {
		t.Fatalf("expected client variant, got %v", d.Kind)
	}
	if d.Client.Shipments.OngoingCount != 1 || d.Client.Shipments.CompletedCount != 2 {
		t.Fatalf("unexpected shipment counts: %+v", d.Client.Shipments)
	}
}

func TestClassifyDashboard_AccountSpecialist(t *testing.T) {
	raw := json.RawMessage(`{
		"user": {"role": "Account Specialist", "company": "Acme Freight", "image_path": null},
		"leads": {"queries_count": 10, "new_count": 3, "replied_count": 7},
		"shipments": {"ongoing_count": 4, "delivered_count": 9},
		"quotations": {"new_count": 2, "responded_count": 5, "accepted_count": 1, "discarded_count": 0},
		"accounts": {"clients_count": 42}
	}`)

	d, err := ClassifyDashboard(raw)
	if err != nil {
		t.Fatalf("ClassifyDashboard returned error: %v", err)
	}
	if d.Kind != DashboardAccountSpecialist || d.AccountSpecialist == nil {
		t.Fatalf("expected account specialist variant, got %v", d.Kind)
	}
	if d.AccountSpecialist.Accounts.ClientsCount != 42 {
		t.Fatalf("clients count = %d", d.AccountSpecialist.Accounts.ClientsCount)
	}
}

func TestClassifyDashboard_SpecialistShipmentsDoNotMatchClient(t *testing.T) {
	// Carries shipments and quotations but with the specialist field set —
	// must not be classified as the client shape.
	raw := json.RawMessage(`{
		"leads": {"queries_count": 1, "new_count": 1, "replied_count": 0},
		"shipments": {"ongoing_count": 4, "delivered_count": 9},
		"quotations": {"new_count": 2, "responded_count": 5, "accepted_count": 1, "discarded_count": 0},
		"accounts": {"clients_count": 3}
	}`)

	d, err := ClassifyDashboard(raw)
	if err != nil {
		t.Fatalf("ClassifyDashboard returned error: %v", err)
	}
	if d.Kind != DashboardAccountSpecialist {
		t.Fatalf("expected account specialist variant, got %v", d.Kind)
	}
}

func TestClassifyDashboard_Marketing(t *testing.T) {
	raw := json.RawMessage(`{
		"user": {"role": "Marketing", "company": "Acme Freight", "image_path": null},
		"views_count": "1523",
		"clients_count": "42",
		"total_videos": "12",
		"total_articles": "34"
	}`)

	d, err := ClassifyDashboard(raw)
	if err != nil {
		t.Fatalf("ClassifyDashboard returned error: %v", err)
	}
	if d.Kind != DashboardMarketing || d.Marketing == nil {
		t.Fatalf("expected marketing variant, got %v", d.Kind)
	}
	if d.Marketing.ViewsCount != "1523" {
		t.Fatalf("views count = %q", d.Marketing.ViewsCount)
	}
}

func TestClassifyDashboard_HumanResource(t *testing.T) {
	raw := json.RawMessage(`{"message": "Generic dashboard data"}`)

	d, err := ClassifyDashboard(raw)
	if err != nil {
		t.Fatalf("ClassifyDashboard returned error: %v", err)
	}
	if d.Kind != DashboardHumanResource || d.HumanResource == nil {
		t.Fatalf("expected human resource variant, got %v", d.Kind)
	}
	if d.HumanResource.Message != "Generic dashboard data" {
		t.Fatalf("message = %q", d.HumanResource.Message)
	}
}

func TestClassifyDashboard_Unrecognized(t *testing.T) {
	raw := json.RawMessage(`{"unexpected": true}`)

	_, err := ClassifyDashboard(raw)
	if !errors.Is(err, ErrUnrecognizedDashboard) {
		t.Fatalf("expected ErrUnrecognizedDashboard, got %v", err)
	}
}

func TestClassifyDashboard_InvalidJSON(t *testing.T) {
	if _, err := ClassifyDashboard(json.RawMessage(`not json`)); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}
