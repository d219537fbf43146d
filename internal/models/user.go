package models

// Role determines which data a principal can see.
type Role string

const (
	RoleAgencyAdmin  Role = "agency_admin"
	RoleAgencyMember Role = "agency_member"
	RoleClient       Role = "client"
)

// UserProfile is the authenticated actor. For client users CompanyName maps
// their records; agency users see everything.
type UserProfile struct {
	ID           string `json:"id"`
	AgencyName   string `json:"agency_name"`
	UserName     string `json:"user_name"`
	Email        string `json:"email"`
	AvatarURL    string `json:"avatar_url"`
	Role         Role   `json:"role"`
	CompanyName  string `json:"company_name,omitempty"`
	PasswordHash string `json:"-"`

	Notifications NotificationPrefs `json:"notifications"`
}

type NotificationPrefs struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Marketing bool `json:"marketing"`
}

// Principal is the resolved identity threaded through handlers and services.
type Principal struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
}

func (p Principal) IsClient() bool { return p.Role == RoleClient }

// AuthState is the persisted session blob. This is the only state that
// survives a restart; every entity collection is rebuilt from the seed.
type AuthState struct {
	IsAuthenticated bool         `json:"is_authenticated"`
	User            *UserProfile `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
