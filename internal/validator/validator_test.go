package validator

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"analyst@agency.gov", "a.b@sub.domain.io"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}
	invalid := []string{"", "no-at-sign", "two@@signs.com", "spaces in@mail.com", "noperiod@domain"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "analyst_one", "A_1234567890"}
	for _, username := range valid {
		if err := ValidateUsername(username); err != nil {
			t.Errorf("ValidateUsername(%q) = %v, want nil", username, err)
		}
	}
	invalid := []string{"", "ab", "has space", "has-dash", "waytoolongusernamewaytoolongusername"}
	for _, username := range invalid {
		if err := ValidateUsername(username); err == nil {
			t.Errorf("ValidateUsername(%q) = nil, want error", username)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345678"); err != nil {
		t.Errorf("ValidatePassword(8 chars) = %v, want nil", err)
	}
	if err := ValidatePassword("1234567"); err == nil {
		t.Error("ValidatePassword(7 chars) = nil, want error")
	}
}

func TestValidateRiskLevel(t *testing.T) {
	for _, level := range []int{1, 3, 5} {
		if err := ValidateRiskLevel(level); err != nil {
			t.Errorf("ValidateRiskLevel(%d) = %v, want nil", level, err)
		}
	}
	for _, level := range []int{0, -1, 6} {
		if err := ValidateRiskLevel(level); err == nil {
			t.Errorf("ValidateRiskLevel(%d) = nil, want error", level)
		}
	}
}

func TestValidateReportFormat(t *testing.T) {
	for _, format := range []string{"json", "pdf"} {
		if err := ValidateReportFormat(format); err != nil {
			t.Errorf("ValidateReportFormat(%q) = %v, want nil", format, err)
		}
	}
	for _, format := range []string{"", "xml", "JSON"} {
		if err := ValidateReportFormat(format); err == nil {
			t.Errorf("ValidateReportFormat(%q) = nil, want error", format)
		}
	}
}
