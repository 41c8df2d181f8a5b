package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/arco-app/backend/internal/domain"
	"github.com/arco-app/backend/internal/repository"
)

type personService struct {
	personRepository repository.Persons
}

func newPersonService(personRepository repository.Persons) *personService {
	return &personService{
		personRepository: personRepository,
	}
}

func (s *personService) GetAll(ctx context.Context) ([]domain.Person, error) {
	return s.personRepository.GetAll(ctx)
}

func (s *personService) GetBySlug(ctx context.Context, slug string) (*domain.Person, error) {
	person, err := s.personRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("get person by slug failed: %w", err)
	}

	return person, nil
}

func (s *personService) Create(ctx context.Context, person *domain.Person) error {
	if person.Slug == "" {
		person.Slug = domain.Slugify(person.FirstName, person.LastName)
	}

	if err := s.personRepository.Create(ctx, person); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return ErrPersonAlreadyExists
		}
		return fmt.Errorf("create person failed: %w", err)
	}

	return nil
}
