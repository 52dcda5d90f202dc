package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"timeblock/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	t.Run("broken JSON", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("from file", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name()); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json"); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/team@group/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.EventRequest{
		CalendarID: "team@group",
		Summary:    "Focus",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Timezone:   "UTC",
		Recurrence: "FREQ=DAILY",
		ExternalID: "sched-1",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}

	rec, _ := got["recurrence"].([]interface{})
	if len(rec) != 1 || rec[0] != "RRULE:FREQ=DAILY" {
		t.Errorf("unexpected recurrence payload: %v", got["recurrence"])
	}
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodPut:
			w.Write([]byte(`{"id": "event-123", "summary": "Moved"}`))
		case r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	event, err := client.UpdateEvent(context.Background(), "event-123", gcalendar.EventRequest{Summary: "Moved"})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if event.Summary != "Moved" {
		t.Errorf("unexpected summary %q", event.Summary)
	}

	if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "", "missing"); err == nil {
		t.Errorf("expected error deleting unknown event")
	}
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := client.CreateEvent(context.Background(), gcalendar.EventRequest{}); err == nil {
		t.Fatalf("expected create event error")
	}
}
