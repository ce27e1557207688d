package model

type Spec struct {
	Info     Info
	Services []Service
	Models   []Model
}

// ServiceByName returns a service by name, nil when absent.
func (s *Spec) ServiceByName(name string) *Service {
	for i := range s.Services {
		if s.Services[i].Name == name {
			return &s.Services[i]
		}
	}
	return nil
}

type Info struct {
	Title       string
	Description string
	Version     string
}

// Service is a named grouping of operations, in spec-tag order.
type Service struct {
	Name       string
	Operations []Operation
}

// Model is a top-level named schema. Meta is the reference string other
// parts of the document use to point at it; it doubles as the key for
// name resolution.
type Model struct {
	Name string
	Meta string
}
