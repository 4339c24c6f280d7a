package agent

import (
	"github.com/samuelfneumann/tabular/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Agent) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent constructed by the Config
	Type() Type
}

// ConfigList stores a number of Configs by storing a slice of values
// for each Config field. The Configs in the list are every combination
// of field values, and each field of a ConfigList must be a slice
// whose element type matches the corresponding field of its Config.
type ConfigList interface {
	// Config returns an empty Config of the type stored in the list
	Config() Config

	// Type returns the type of agent constructed by stored Configs
	Type() Type

	// NumFields returns the number of settable fields
	NumFields() int

	// Len returns the number of Configs in the list
	Len() int
}
