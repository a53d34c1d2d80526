package environment

import "gopkg.in/yaml.v3"

type Env int

const (
	Unknown Env = iota
	Development
	Production
	Testing
)

func FromString(s string) Env {
	switch s {
	case "dev", "development":
		return Development
	case "prod", "production":
		return Production
	case "test", "testing":
		return Testing
	default:
		return Unknown
	}
}

func (e Env) String() string {
	switch e {
	case Development:
		return "dev"
	case Production:
		return "prod"
	case Testing:
		return "test"
	default:
		return "unknown"
	}
}

func (e *Env) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*e = FromString(raw)
	return nil
}

func (e Env) MarshalYAML() (any, error) {
	return e.String(), nil
}
