package xivapi

import (
	"errors"
	"testing"
)

func TestParseDataSelector(t *testing.T) {
	tests := []struct {
		input string
		want  DataSelector
	}{
		{"achievements", SelectAchievements},
		{"Friends", SelectFriends},
		{"free-company", SelectFreeCompany},
		{"free_company_members", SelectFreeCompanyMembers},
		{" minions ", SelectMinions},
		{"mounts", SelectMounts},
		{"pvp-team", SelectPvPTeam},
		{"AC", SelectAchievements},
		{"fcm", SelectFreeCompanyMembers},
		{"MIMO", SelectMounts},
		{"PVP", SelectPvPTeam},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDataSelector(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseDataSelector_Invalid(t *testing.T) {
	for _, input := range []string{"", "friend", "FCMM", "class-jobs", "mimo,pvp"} {
		_, err := ParseDataSelector(input)
		var selErr *InvalidSelectorError
		if !errors.As(err, &selErr) {
			t.Fatalf("Expected InvalidSelectorError for %q, got %v", input, err)
		}
		if selErr.Value != input {
			t.Errorf("Expected value %q, got %q", input, selErr.Value)
		}
	}
}

func TestDataSelector_String(t *testing.T) {
	if got := SelectFreeCompanyMembers.String(); got != "free-company-members" {
		t.Errorf("Expected 'free-company-members', got '%s'", got)
	}
	if got := DataSelector(0).String(); got != "DataSelector(0)" {
		t.Errorf("Expected 'DataSelector(0)', got '%s'", got)
	}
	if DataSelector(0).Valid() || DataSelector(200).Valid() {
		t.Error("Expected out-of-range selectors to be invalid")
	}
}

func TestJoinSelectors(t *testing.T) {
	tests := []struct {
		name string
		data []DataSelector
		want string
	}{
		{"Single", []DataSelector{SelectFriends}, "FR"},
		{"Order kept", []DataSelector{SelectPvPTeam, SelectAchievements}, "PVP,AC"},
		{"Duplicates dropped", []DataSelector{SelectFriends, SelectFriends, SelectFreeCompany}, "FR,FC"},
		{"Shared token", []DataSelector{SelectMounts, SelectAchievements, SelectMinions}, "MIMO,AC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := joinSelectors(tt.data)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}
