// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// InvocationStatus records what happened to one tool invocation. It is kept
// for reporting only; a failed invocation never stops a batch.
type InvocationStatus string

const (
	InvocationConverted InvocationStatus = "converted"
	InvocationFailed    InvocationStatus = "failed"
)

// Invocation is one planned run of the synthesis tool.
type Invocation struct {
	// Name is the directory entry the invocation was built from (e.g. "adder.pla").
	Name string `json:"name" yaml:"name"`

	// InputPath is the PLA file handed to the tool.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the BLIF file the tool is asked to write.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// InvocationResult pairs an invocation with its outcome.
type InvocationResult struct {
	Invocation `yaml:",inline"`

	Status InvocationStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is InvocationFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
