package email

import (
	"strings"
	"testing"
)

func TestBuildRequestEmails(t *testing.T) {
	data := RequestEmailData{
		FirstName:    "Amina",
		Email:        "amina@example.com",
		RequestTitle: "Blood panel",
		RequestType:  "lab_result",
		ProviderName: "Central Lab",
		Feedback:     "Two tests need a fasting sample",
	}

	builders := map[string]func(RequestEmailData) Message{
		"ready":        BuildRequestReadyEmail,
		"partial":      BuildPartialOfferEmail,
		"out_of_stock": BuildOutOfStockEmail,
		"completed":    BuildRequestCompletedEmail,
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			m := build(data)

			if len(m.To) != 1 || m.To[0] != data.Email {
				t.Errorf("To = %v, want [%s]", m.To, data.Email)
			}
			if m.Subject == "" {
				t.Error("empty subject")
			}
			if !strings.Contains(m.TextBody, data.FirstName) {
				t.Error("text body does not greet the patient")
			}
			if !strings.Contains(m.TextBody, data.RequestTitle) {
				t.Error("text body does not mention the request")
			}
			if m.HTMLBody == "" {
				t.Error("empty HTML body")
			}
		})
	}
}

func TestBuildRequestEmailDefaults(t *testing.T) {
	m := BuildRequestReadyEmail(RequestEmailData{
		Email:        "x@example.com",
		RequestTitle: "Prescription",
	})

	if !strings.Contains(m.TextBody, "there") {
		t.Error("expected fallback greeting for missing first name")
	}
	if !strings.Contains(m.Subject, "SehatyNet") {
		t.Errorf("expected default app name in subject, got %q", m.Subject)
	}
}

func TestBuildOTPEmailLanguages(t *testing.T) {
	en := BuildOTPEmail("x@example.com", "123456", "en", 5)
	if !strings.Contains(en.TextBody, "123456") {
		t.Error("english OTP email does not contain the code")
	}

	fr := BuildOTPEmail("x@example.com", "654321", "fr", 5)
	if !strings.Contains(fr.TextBody, "654321") {
		t.Error("french OTP email does not contain the code")
	}
	if fr.Subject == en.Subject {
		t.Error("expected language-specific subjects")
	}
}
