package domain

import (
	"testing"
)

func TestUserType_Valid(t *testing.T) {
	tests := []struct {
		userType UserType
		valid    bool
	}{
		{UserTypeAthlete, true},
		{UserTypeClub, true},
		{"", false},
		{"admin", false},
		{"Athlete", false},
	}

	for _, tt := range tests {
		if got := tt.userType.Valid(); got != tt.valid {
			t.Errorf("UserType(%q).Valid() = %v, want %v", tt.userType, got, tt.valid)
		}
	}
}

func TestProfile_View_ClubVariant(t *testing.T) {
	p := &Profile{
		ID:       "id-1",
		Email:    "clube@exemplo.com",
		UserType: UserTypeClub,
		Club: &ClubProfile{
			LegalName:     "Clube Padel Azul LTDA",
			TradeName:     "Padel Azul",
			CNPJ:          "12.345.678/0001-99",
			CoveredCourts: true,
		},
		// A stray athlete record must not leak into the view.
		Athlete: &AthleteProfile{FirstName: "Ana"},
	}

	v := p.View()

	if v["user_type"] != "club" {
		t.Errorf("user_type = %v, want club", v["user_type"])
	}
	if v["legal_name"] != "Clube Padel Azul LTDA" {
		t.Errorf("legal_name = %v", v["legal_name"])
	}
	if v["covered_courts"] != true {
		t.Errorf("covered_courts = %v, want true", v["covered_courts"])
	}
	if _, leaked := v["first_name"]; leaked {
		t.Error("athlete fields leaked into a club view")
	}
}

func TestProfile_View_AthleteVariant(t *testing.T) {
	p := &Profile{
		ID:       "id-2",
		Email:    "atleta@exemplo.com",
		UserType: UserTypeAthlete,
		Athlete: &AthleteProfile{
			FirstName: "Ana",
			LastName:  "Souza",
			Sports:    []string{"padel"},
		},
	}

	v := p.View()

	if v["user_type"] != "athlete" {
		t.Errorf("user_type = %v, want athlete", v["user_type"])
	}
	if v["first_name"] != "Ana" || v["last_name"] != "Souza" {
		t.Errorf("names = %v %v", v["first_name"], v["last_name"])
	}
	if _, leaked := v["cnpj"]; leaked {
		t.Error("club fields leaked into an athlete view")
	}
}

func TestProfile_View_MissingVariantRecord(t *testing.T) {
	p := &Profile{ID: "id-3", Email: "x@exemplo.com", UserType: UserTypeClub}

	v := p.View()

	// Shared fields survive even when the variant record is absent.
	if v["id"] != "id-3" || v["email"] != "x@exemplo.com" {
		t.Errorf("shared fields missing: %v", v)
	}
	if _, present := v["legal_name"]; present {
		t.Error("variant fields should be absent without a variant record")
	}
}

func TestAuthSession_Identity(t *testing.T) {
	s := &AuthSession{
		ID:         "session-1",
		IdentityID: "id-1",
		Email:      "usuario@exemplo.com",
		UserType:   UserTypeAthlete,
	}

	identity := s.Identity()
	if identity.ID != "id-1" || identity.Email != "usuario@exemplo.com" || identity.UserType != UserTypeAthlete {
		t.Errorf("Identity() = %+v", identity)
	}
}

func TestKnownDraftKind(t *testing.T) {
	tests := []struct {
		kind  DraftKind
		known bool
	}{
		{DraftClubRegistration, true},
		{DraftAthleteRegistration, true},
		{DraftSettings, true},
		{"", false},
		{"shopping_cart", false},
	}

	for _, tt := range tests {
		if got := KnownDraftKind(tt.kind); got != tt.known {
			t.Errorf("KnownDraftKind(%q) = %v, want %v", tt.kind, got, tt.known)
		}
	}
}
