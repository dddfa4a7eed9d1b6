package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal stand-in for the API: a single account, cookie
// sessions, and in-memory collections.
type fakeBackend struct {
	mux      *http.ServeMux
	projects []Project
	skills   []Skill

	failProjects bool
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{mux: http.NewServeMux()}

	authed := func(r *http.Request) bool {
		c, err := r.Cookie("portfolio_session")
		return err == nil && c.Value == "sessiontoken"
	}
	writeMessage := func(w http.ResponseWriter, code int, msg string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{"message": msg})
	}

	b.mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secretpass" {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "portfolio_session", Value: "sessiontoken", Path: "/"})
		writeMessage(w, http.StatusOK, "Login successful")
	})

	b.mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "portfolio_session", Value: "", Path: "/", MaxAge: -1})
		writeMessage(w, http.StatusOK, "Logout successful")
	})

	b.mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		json.NewEncoder(w).Encode(AuthStatus{UserID: "user-1", Email: "admin@example.com"})
	})

	b.mux.HandleFunc("GET /api/profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Profile{Name: "Sam Doe", Email: "sam@example.com"})
	})

	b.mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, r *http.Request) {
		if b.failProjects {
			writeMessage(w, http.StatusInternalServerError, "Failed to fetch projects")
			return
		}
		json.NewEncoder(w).Encode(b.projects)
	})

	b.mux.HandleFunc("POST /api/projects", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		var create ProjectCreate
		json.NewDecoder(r.Body).Decode(&create)
		if create.Title == "" {
			writeMessage(w, http.StatusBadRequest, "title is required")
			return
		}
		p := Project{
			ID:          "project-1",
			Title:       create.Title,
			Description: create.Description,
			Image:       create.Image,
			Link:        create.Link,
			Tech:        create.Tech,
			CreatedAt:   time.Now().UTC(),
		}
		b.projects = append(b.projects, p)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	})

	b.mux.HandleFunc("DELETE /api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id := r.PathValue("id")
		for i, p := range b.projects {
			if p.ID == id {
				b.projects = append(b.projects[:i], b.projects[i+1:]...)
				writeMessage(w, http.StatusOK, "Project deleted successfully")
				return
			}
		}
		writeMessage(w, http.StatusNotFound, "project not found")
	})

	b.mux.HandleFunc("GET /api/skills", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(b.skills)
	})

	b.mux.HandleFunc("GET /api/experience", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Experience{})
	})

	return b
}

func newTestClient(t *testing.T) (*Client, *fakeBackend) {
	t.Helper()

	backend := newFakeBackend()
	server := httptest.NewServer(backend.mux)
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	require.NoError(t, err)
	return c, backend
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()
	c, backend := newTestClient(t)
	backend.projects = []Project{{ID: "project-1", Title: "Portfolio"}}
	backend.skills = []Skill{{ID: "skill-1", Name: "Go", Category: "Backend"}}

	require.NoError(t, c.Hydrate(ctx))

	state := c.State()
	assert.False(t, state.Authenticated, "no login yet")
	require.NotNil(t, state.Profile)
	assert.Equal(t, "Sam Doe", state.Profile.Name)
	assert.Len(t, state.Projects, 1)
	assert.Len(t, state.Skills, 1)
	assert.Empty(t, state.Experience)
}

func TestHydratePartialFailure(t *testing.T) {
	ctx := context.Background()
	c, backend := newTestClient(t)
	backend.failProjects = true
	backend.skills = []Skill{{ID: "skill-1", Name: "Go", Category: "Backend"}}

	require.NoError(t, c.Hydrate(ctx), "one failed slice must not fail the hydrate")

	state := c.State()
	assert.Nil(t, state.Projects, "the failed slice degrades to empty")
	assert.Len(t, state.Skills, 1, "other slices still load")
	assert.NotNil(t, state.Profile)
}

func TestLoginAndAuthenticatedMutation(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	err := c.Login(ctx, Credentials{Email: "admin@example.com", Password: "wrongpass"})
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, c.State().Authenticated)

	require.NoError(t, c.Login(ctx, Credentials{Email: "admin@example.com", Password: "secretpass"}))
	assert.True(t, c.State().Authenticated)

	p, err := c.CreateProject(ctx, ProjectCreate{
		Title:       "Portfolio",
		Description: "This website",
		Image:       "shot.png",
		Tech:        []string{"React", "Go"},
	})
	require.NoError(t, err, "the session cookie from Login must carry over")
	assert.Equal(t, "Portfolio", p.Title)
}

func TestUnauthenticatedMutationLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	c, backend := newTestClient(t)
	require.NoError(t, c.Hydrate(ctx))

	_, err := c.CreateProject(ctx, ProjectCreate{Title: "X", Description: "d", Image: "i"})
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Empty(t, c.State().Projects, "a rejected write must not touch the cache")
	assert.Empty(t, backend.projects)
}

func TestConfirmedWriteUpdatesCache(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)
	require.NoError(t, c.Login(ctx, Credentials{Email: "admin@example.com", Password: "secretpass"}))
	require.NoError(t, c.Hydrate(ctx))

	created, err := c.CreateProject(ctx, ProjectCreate{Title: "Portfolio", Description: "d", Image: "i"})
	require.NoError(t, err)

	state := c.State()
	require.Len(t, state.Projects, 1)
	assert.Equal(t, created.ID, state.Projects[0].ID)

	require.NoError(t, c.DeleteProject(ctx, created.ID))
	assert.Empty(t, c.State().Projects)

	err = c.DeleteProject(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
