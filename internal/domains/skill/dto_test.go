package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequestValidate(t *testing.T) {
	req := CreateRequest{Name: "React", Category: CategoryFrontend}
	assert.NoError(t, req.Validate())

	req = CreateRequest{Name: "  Docker  ", Category: CategoryTools}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Docker", req.Name, "name is trimmed")
}

func TestCreateRequestRejectsUnknownCategory(t *testing.T) {
	cases := []string{"", "frontend", "Databases", "Other"}
	for _, category := range cases {
		req := CreateRequest{Name: "React", Category: category}
		assert.Error(t, req.Validate(), "category %q should be rejected", category)
	}
}

func TestCreateRequestRequiresName(t *testing.T) {
	req := CreateRequest{Name: "   ", Category: CategoryBackend}
	assert.Error(t, req.Validate())
}
