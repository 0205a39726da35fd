package domain

import "time"

// User models a registered account. Any user may both post jobs and apply.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	AvatarURL    string     `json:"avatar_url"`
	Phone        string     `json:"phone,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Identity is the signed assertion about the acting user. The core trusts
// its ID for every authorization decision.
type Identity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}
}

// ApplicantProfile is what a job owner sees about an applicant.
type ApplicantProfile struct {
	Identity
	Phone       string     `json:"phone,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Age         *int       `json:"age,omitempty"`
}

// ApplicantProfileAt builds the owner-facing profile, deriving the age at now.
func (u *User) ApplicantProfileAt(now time.Time) ApplicantProfile {
	p := ApplicantProfile{
		Identity:    u.Identity(),
		Phone:       u.Phone,
		Gender:      u.Gender,
		DateOfBirth: u.DateOfBirth,
	}
	if u.DateOfBirth != nil {
		age := AgeAt(*u.DateOfBirth, now)
		p.Age = &age
	}
	return p
}

// AgeAt returns full calendar years between dob and now. dob is a calendar
// date stored at UTC midnight and is read in UTC; now is read in its own zone.
func AgeAt(dob, now time.Time) int {
	by, bm, bd := dob.UTC().Date()
	ny, nm, nd := now.Date()
	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
