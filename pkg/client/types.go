package client

import "time"

// Wire types. These mirror the API's JSON bodies; the client keeps its own
// copies so consumers do not depend on server internals.

type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Email     string    `json:"email"`
	GitHub    string    `json:"github"`
	LinkedIn  string    `json:"linkedin"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Link        string    `json:"link"`
	Tech        []string  `json:"tech"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type Experience struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AuthStatus struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Request payloads

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileUpdate struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type ProjectCreate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link,omitempty"`
	Tech        []string `json:"tech"`
}

// ProjectUpdate carries only the fields to change; nil fields are left
// untouched server-side.
type ProjectUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Link        *string   `json:"link,omitempty"`
	Tech        *[]string `json:"tech,omitempty"`
}

type SkillCreate struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ExperienceCreate struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type ExperienceUpdate struct {
	Role        *string `json:"role,omitempty"`
	Company     *string `json:"company,omitempty"`
	Period      *string `json:"period,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
