package lex

import (
	"encoding/json"
	"testing"
)

func TestNewResponseCardCapsButtons(t *testing.T) {
	options := []Button{
		{Text: "a", Value: "a"},
		{Text: "b", Value: "b"},
		{Text: "c", Value: "c"},
		{Text: "d", Value: "d"},
		{Text: "e", Value: "e"},
		{Text: "f", Value: "f"},
		{Text: "g", Value: "g"},
	}

	card := NewResponseCard("Specify Time", "What time works best for you?", options)

	if len(card.GenericAttachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(card.GenericAttachments))
	}
	if got := len(card.GenericAttachments[0].Buttons); got != 5 {
		t.Errorf("expected 5 buttons, got %d", got)
	}
	if card.ContentType != CardContentType {
		t.Errorf("content type = %q, want %q", card.ContentType, CardContentType)
	}
}

func TestCloseMarksFulfilled(t *testing.T) {
	resp := Close(map[string]string{"k": "v"}, PlainText("done"))

	if resp.DialogAction.Type != ActionClose {
		t.Errorf("type = %q, want %q", resp.DialogAction.Type, ActionClose)
	}
	if resp.DialogAction.FulfillmentState != FulfillmentFulfilled {
		t.Errorf("fulfillment state = %q, want %q", resp.DialogAction.FulfillmentState, FulfillmentFulfilled)
	}
}

func TestDelegateCarriesSlots(t *testing.T) {
	slots := map[string]string{"AppointmentType": "cleaning", "Date": "2025-01-08", "Time": "10:00"}
	resp := Delegate(nil, slots)

	if resp.DialogAction.Type != ActionDelegate {
		t.Errorf("type = %q, want %q", resp.DialogAction.Type, ActionDelegate)
	}
	if resp.DialogAction.Slots["Time"] != "10:00" {
		t.Errorf("slots not carried: %v", resp.DialogAction.Slots)
	}
}

func TestRequestUnmarshal(t *testing.T) {
	raw := `{
		"currentIntent": {
			"name": "MakeAppointment",
			"slots": {"AppointmentType": "cleaning", "Date": null, "Time": ""},
			"confirmationStatus": "None"
		},
		"bot": {"name": "ScheduleAppointment", "alias": "$LATEST", "version": "$LATEST"},
		"userId": "user-1234",
		"invocationSource": "DialogCodeHook",
		"outputDialogMode": "Text",
		"messageVersion": "1.0",
		"sessionAttributes": {"bookingMap": "{}"}
	}`

	var req Request
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.CurrentIntent.Name != "MakeAppointment" {
		t.Errorf("intent = %q", req.CurrentIntent.Name)
	}
	if req.CurrentIntent.Slots["AppointmentType"] != "cleaning" {
		t.Errorf("slots = %v", req.CurrentIntent.Slots)
	}
	// A JSON null slot decodes as the empty string, our "not collected" value.
	if req.CurrentIntent.Slots["Date"] != "" {
		t.Errorf("null slot should decode empty, got %q", req.CurrentIntent.Slots["Date"])
	}
	if req.InvocationSource != SourceDialogCodeHook {
		t.Errorf("source = %q", req.InvocationSource)
	}
}
