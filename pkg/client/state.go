package client

import (
	"context"
	"net/http"
	"sync"
)

// State is the client-held cache of the server's content. It follows a
// confirmed-write model: mutations touch the cache only after the server
// acknowledges them, so the cache always mirrors acknowledged server state.
type State struct {
	Authenticated bool
	AuthStatus    *AuthStatus
	Profile       *Profile
	Projects      []Project
	Skills        []Skill
	Experience    []Experience
}

// State returns a snapshot of the cached state. The slices are copies, so
// callers can hold the snapshot across later mutations.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := c.state
	snapshot.Projects = append([]Project(nil), c.state.Projects...)
	snapshot.Skills = append([]Skill(nil), c.state.Skills...)
	snapshot.Experience = append([]Experience(nil), c.state.Experience...)
	return snapshot
}

// Hydrate fetches auth status, profile and all three collections in
// parallel. A failed fetch degrades its own slice to empty (or nil for the
// profile) without blocking the others, so a partially available backend
// still yields a usable state. The returned error is nil unless every
// fetch failed.
func (c *Client) Hydrate(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make([]error, 5)

	wg.Add(5)

	go func() {
		defer wg.Done()
		status, err := c.fetchAuthStatus(ctx)
		c.mu.Lock()
		if err != nil {
			c.state.Authenticated = false
			c.state.AuthStatus = nil
		} else {
			c.state.Authenticated = true
			c.state.AuthStatus = status
		}
		c.mu.Unlock()
		errs[0] = err
	}()

	go func() {
		defer wg.Done()
		profile, err := c.GetProfile(ctx)
		c.mu.Lock()
		if err != nil {
			c.state.Profile = nil
		} else {
			c.state.Profile = profile
		}
		c.mu.Unlock()
		errs[1] = err
	}()

	go func() {
		defer wg.Done()
		projects, err := c.ListProjects(ctx)
		c.mu.Lock()
		if err != nil {
			c.state.Projects = nil
		} else {
			c.state.Projects = projects
		}
		c.mu.Unlock()
		errs[2] = err
	}()

	go func() {
		defer wg.Done()
		skills, err := c.ListSkills(ctx)
		c.mu.Lock()
		if err != nil {
			c.state.Skills = nil
		} else {
			c.state.Skills = skills
		}
		c.mu.Unlock()
		errs[3] = err
	}()

	go func() {
		defer wg.Done()
		experience, err := c.ListExperience(ctx)
		c.mu.Lock()
		if err != nil {
			c.state.Experience = nil
		} else {
			c.state.Experience = experience
		}
		c.mu.Unlock()
		errs[4] = err
	}()

	wg.Wait()

	// An expected 401/404 (not logged in, profile not written yet) is a
	// normal empty slice, not a hydration failure.
	var firstHard error
	hardFailures := 0
	for _, err := range errs {
		if err == nil || IsUnauthorized(err) || IsNotFound(err) {
			continue
		}
		hardFailures++
		if firstHard == nil {
			firstHard = err
		}
	}
	if hardFailures == 5 {
		return firstHard
	}

	return nil
}

func (c *Client) fetchAuthStatus(ctx context.Context) (*AuthStatus, error) {
	var status AuthStatus
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
