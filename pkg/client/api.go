package client

import (
	"context"
	"net/http"
)

// Auth

// Register creates the admin account. Does not log in.
func (c *Client) Register(ctx context.Context, creds Credentials) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", creds, nil)
}

// Login authenticates and stores the session cookie in the jar. On success
// the cached auth state flips to authenticated.
func (c *Client) Login(ctx context.Context, creds Credentials) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, nil); err != nil {
		return err
	}

	status, err := c.fetchAuthStatus(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Authenticated = true
	c.state.AuthStatus = status
	c.mu.Unlock()
	return nil
}

// Logout invalidates the session server-side and clears the cached auth
// state.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Authenticated = false
	c.state.AuthStatus = nil
	c.mu.Unlock()
	return nil
}

// Profile

func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile", update, &p); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state.Profile = &p
	c.mu.Unlock()
	return &p, nil
}

// Projects

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, create ProjectCreate) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", create, &p); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state.Projects = append(c.state.Projects, p)
	c.mu.Unlock()
	return &p, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, update ProjectUpdate) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, update, &p); err != nil {
		return nil, err
	}

	c.mu.Lock()
	for i := range c.state.Projects {
		if c.state.Projects[i].ID == p.ID {
			c.state.Projects[i] = p
			break
		}
	}
	c.mu.Unlock()
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Projects = removeByID(c.state.Projects, id, func(p Project) string { return p.ID })
	c.mu.Unlock()
	return nil
}

// Skills

func (c *Client) ListSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	if err := c.do(ctx, http.MethodGet, "/api/skills", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (c *Client) CreateSkill(ctx context.Context, create SkillCreate) (*Skill, error) {
	var s Skill
	if err := c.do(ctx, http.MethodPost, "/api/skills", create, &s); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state.Skills = append(c.state.Skills, s)
	c.mu.Unlock()
	return &s, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/skills/"+id, nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Skills = removeByID(c.state.Skills, id, func(s Skill) string { return s.ID })
	c.mu.Unlock()
	return nil
}

// Experience

func (c *Client) ListExperience(ctx context.Context) ([]Experience, error) {
	var entries []Experience
	if err := c.do(ctx, http.MethodGet, "/api/experience", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) CreateExperience(ctx context.Context, create ExperienceCreate) (*Experience, error) {
	var e Experience
	if err := c.do(ctx, http.MethodPost, "/api/experience", create, &e); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state.Experience = append(c.state.Experience, e)
	c.mu.Unlock()
	return &e, nil
}

func (c *Client) UpdateExperience(ctx context.Context, id string, update ExperienceUpdate) (*Experience, error) {
	var e Experience
	if err := c.do(ctx, http.MethodPut, "/api/experience/"+id, update, &e); err != nil {
		return nil, err
	}

	c.mu.Lock()
	for i := range c.state.Experience {
		if c.state.Experience[i].ID == e.ID {
			c.state.Experience[i] = e
			break
		}
	}
	c.mu.Unlock()
	return &e, nil
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/experience/"+id, nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Experience = removeByID(c.state.Experience, id, func(e Experience) string { return e.ID })
	c.mu.Unlock()
	return nil
}

// Contact

func (c *Client) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/api/contact", msg, nil)
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
