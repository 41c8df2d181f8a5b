package v1

import (
	"net/http"
	"testing"

	"github.com/arco-app/backend/internal/domain"
	"github.com/arco-app/backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPersons(t *testing.T) {
	f := newAPIFixture(t)

	f.persons.On("GetAll", mock.Anything).Return([]domain.Person{
		{ID: 1, FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Title: "CTO", Slug: "alice-smith"},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/team", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"alice-smith"`)
}

func TestGetPersonBySlug(t *testing.T) {
	f := newAPIFixture(t)

	f.persons.On("GetBySlug", mock.Anything, "alice-smith").Return(&domain.Person{
		ID: 1, FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Title: "CTO", Slug: "alice-smith",
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/team/alice-smith", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"first_name":"Alice"`)
}

func TestGetPersonBySlugNotFound(t *testing.T) {
	f := newAPIFixture(t)

	f.persons.On("GetBySlug", mock.Anything, "nobody").Return(nil, service.ErrPersonNotFound)

	rec := f.do(t, http.MethodGet, "/api/v1/team/nobody", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePerson(t *testing.T) {
	f := newAPIFixture(t)

	f.persons.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Person) bool {
		return p.FirstName == "Bob" && p.LastName == "Jones" && p.GithubURL.String == "https://github.com/bob"
	})).Return(nil)

	rec := f.do(t, http.MethodPost, "/api/v1/team", `{
		"first_name": "Bob",
		"last_name": "Jones",
		"email": "bob@example.com",
		"title": "Engineer",
		"github_url": "https://github.com/bob"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	f.persons.AssertExpectations(t)
}

func TestCreatePersonDuplicate(t *testing.T) {
	f := newAPIFixture(t)

	f.persons.On("Create", mock.Anything, mock.Anything).Return(service.ErrPersonAlreadyExists)

	rec := f.do(t, http.MethodPost, "/api/v1/team", `{
		"first_name": "Bob",
		"last_name": "Jones",
		"email": "bob@example.com",
		"title": "Engineer"
	}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreatePersonValidation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/team", `{"first_name": "Bob"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation error")
	f.persons.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
