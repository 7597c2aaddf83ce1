package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"calatorie/internal/model"
)

// ExperienceInput carries the raw experience form values.
type ExperienceInput struct {
	Name        string
	Type        string
	Description string
	Location    string
	Rating      string
}

// AddExperience records a post-trip experience. Name, type, description
// and location are required; the rating is an integer from 1 to 5 and
// defaults to 3 when left blank.
func (s *Store) AddExperience(in ExperienceInput) error {
	name := strings.TrimSpace(in.Name)
	typ := strings.TrimSpace(in.Type)
	description := strings.TrimSpace(in.Description)
	location := strings.TrimSpace(in.Location)

	if name == "" || typ == "" || description == "" || location == "" {
		return fmt.Errorf("all experience fields are required: %w", ErrValidation)
	}

	switch typ {
	case model.ExperienceAuthentic, model.ExperienceTourist, model.ExperienceMixed:
	default:
		return fmt.Errorf("type must be authentic, tourist or mixed: %w", ErrValidation)
	}

	rating := 3
	if raw := strings.TrimSpace(in.Rating); raw != "" {
		r, err := strconv.Atoi(raw)
		if err != nil || r < 1 || r > 5 {
			return fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
		}
		rating = r
	}

	s.state.Experiences = append(s.state.Experiences, model.Experience{
		ID:          uuid.NewString(),
		Name:        name,
		Type:        typ,
		Description: description,
		Location:    location,
		Rating:      rating,
	})

	return s.persist()
}

// DeleteExperience removes an experience by id. Missing ids are a silent
// no-op.
func (s *Store) DeleteExperience(id string) error {
	kept := s.state.Experiences[:0]
	for _, e := range s.state.Experiences {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.state.Experiences) {
		return nil
	}
	s.state.Experiences = kept
	return s.persist()
}
