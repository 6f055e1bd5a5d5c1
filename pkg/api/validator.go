package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p PointerPayload) Validate() error {
	if len(p.Hits) == 0 {
		return errors.New("hits cannot be empty")
	}
	for _, h := range p.Hits {
		if h.ID == "" {
			return errors.New("hit id is required")
		}
	}
	return nil
}

func (p TogglePayload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func (p BookPayload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Start.IsZero() || p.End.IsZero() {
		return errors.New("start and end are required")
	}
	if !p.Start.Before(p.End) {
		return errors.New("start must be before end")
	}
	return nil
}

func (p BulkVisibilityPayload) Validate() error {
	if len(p.Names) == 0 {
		return errors.New("names cannot be empty")
	}
	return nil
}
