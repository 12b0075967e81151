package domain

import "time"

// UserType discriminates the two profile variants. The tag is set at
// sign-up and never changes afterwards.
type UserType string

const (
	UserTypeAthlete UserType = "athlete"
	UserTypeClub    UserType = "club"
)

// Valid reports whether t is one of the two known variants.
func (t UserType) Valid() bool {
	return t == UserTypeAthlete || t == UserTypeClub
}

// Identity is the authenticated-user reference held by a session.
type Identity struct {
	ID       string
	Email    string
	UserType UserType
}

// AthleteProfile holds the athlete-variant fields.
type AthleteProfile struct {
	FirstName string
	LastName  string
	Nickname  string
	BirthDate string
	City      string
	State     string
	Bio       string
	Phone     string
	Sports    []string
	Rackets   []string
	Instagram string
}

// ClubProfile holds the club-variant fields.
type ClubProfile struct {
	LegalName     string
	TradeName     string
	CNPJ          string
	Phone         string
	Street        string
	City          string
	State         string
	CEP           string
	Description   string
	CoveredCourts bool
	Parking       bool
	Bar           bool
}

// Profile is a discriminated record: exactly one of Athlete or Club is
// meaningful, selected by UserType.
type Profile struct {
	ID        string
	Email     string
	UserType  UserType
	CreatedAt time.Time
	UpdatedAt time.Time
	Athlete   *AthleteProfile
	Club      *ClubProfile
}

// IsClub reports whether the club variant is the active one.
func (p *Profile) IsClub() bool { return p.UserType == UserTypeClub }

// View is the single variant-dispatch point for rendering. Callers get a
// map shaped for the active variant instead of branching on the tag
// themselves.
func (p *Profile) View() map[string]any {
	v := map[string]any{
		"id":         p.ID,
		"email":      p.Email,
		"user_type":  string(p.UserType),
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
	switch p.UserType {
	case UserTypeClub:
		if p.Club != nil {
			v["legal_name"] = p.Club.LegalName
			v["trade_name"] = p.Club.TradeName
			v["cnpj"] = p.Club.CNPJ
			v["phone"] = p.Club.Phone
			v["street"] = p.Club.Street
			v["city"] = p.Club.City
			v["state"] = p.Club.State
			v["cep"] = p.Club.CEP
			v["description"] = p.Club.Description
			v["covered_courts"] = p.Club.CoveredCourts
			v["parking"] = p.Club.Parking
			v["bar"] = p.Club.Bar
		}
	case UserTypeAthlete:
		if p.Athlete != nil {
			v["first_name"] = p.Athlete.FirstName
			v["last_name"] = p.Athlete.LastName
			v["nickname"] = p.Athlete.Nickname
			v["birth_date"] = p.Athlete.BirthDate
			v["city"] = p.Athlete.City
			v["state"] = p.Athlete.State
			v["bio"] = p.Athlete.Bio
			v["phone"] = p.Athlete.Phone
			v["sports"] = p.Athlete.Sports
			v["rackets"] = p.Athlete.Rackets
			v["instagram"] = p.Athlete.Instagram
		}
	}
	return v
}

// ProfileUpdate is a partial profile mutation. Nil fields are left
// untouched. The variant tag is deliberately absent: it cannot change.
type ProfileUpdate struct {
	// athlete fields
	FirstName *string
	LastName  *string
	Nickname  *string
	BirthDate *string
	Bio       *string
	Sports    *[]string
	Rackets   *[]string
	Instagram *string
	// club fields
	LegalName     *string
	TradeName     *string
	Description   *string
	Street        *string
	CEP           *string
	CoveredCourts *bool
	Parking       *bool
	Bar           *bool
	// shared
	Phone *string
	City  *string
	State *string
}

// Account is the credential holder behind an identity.
type Account struct {
	ID             string
	Email          string
	PasswordHash   string
	UserType       UserType
	EmailConfirmed bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AuthSession is a live backend session.
type AuthSession struct {
	ID         string
	IdentityID string
	Email      string
	UserType   UserType
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Identity derives the identity reference carried by the session.
func (s *AuthSession) Identity() *Identity {
	return &Identity{ID: s.IdentityID, Email: s.Email, UserType: s.UserType}
}

// AuthResult represents a successful sign-in outcome.
type AuthResult struct {
	Identity     *Identity
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// SignUpAttributes carries the variant choice and its initial fields.
type SignUpAttributes struct {
	UserType UserType
	Athlete  *AthleteProfile
	Club     *ClubProfile
}

// SignUpResult represents a successful sign-up outcome. No session is
// established: the account requires out-of-band email confirmation first.
type SignUpResult struct {
	Identity             *Identity
	ConfirmationRequired bool
}

// TokenClaims represents JWT token claims.
type TokenClaims struct {
	IdentityID string `json:"identity_id"`
	UserType   string `json:"user_type"`
	SessionID  string `json:"session_id,omitempty"`
	IssuedAt   int64  `json:"iat"`
	ExpiresAt  int64  `json:"exp"`
}

// DraftKind names a client-side draft cache slot.
type DraftKind string

const (
	DraftClubRegistration    DraftKind = "club_registration"
	DraftAthleteRegistration DraftKind = "athlete_registration"
	DraftSettings            DraftKind = "settings"
)

// KnownDraftKind reports whether k is one of the supported slots.
func KnownDraftKind(k DraftKind) bool {
	switch k {
	case DraftClubRegistration, DraftAthleteRegistration, DraftSettings:
		return true
	}
	return false
}

// TournamentStatus is the lifecycle state of a tournament listing.
type TournamentStatus string

const (
	TournamentOpen     TournamentStatus = "open"
	TournamentClosed   TournamentStatus = "closed"
	TournamentFinished TournamentStatus = "finished"
)

// Tournament is a club-owned tournament listing.
type Tournament struct {
	ID          string
	ClubID      string
	Name        string
	Description string
	Venue       string
	City        string
	State       string
	StartDate   time.Time
	EndDate     time.Time
	Categories  []string
	Status      TournamentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
