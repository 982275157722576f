// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package abc runs the ABC synthesis tool to turn PLA files into BLIF
// netlists. The tool is treated as a black box: this package only builds
// its command script and runs it as a child process.
package abc

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec = &osExecutor{}

// Script returns the ABC command string that reads input, applies steps in
// order, and writes output.
func Script(input, output string, steps []string) string {
	cmds := make([]string, 0, len(steps)+2)
	cmds = append(cmds, "read_pla "+input)
	cmds = append(cmds, steps...)
	cmds = append(cmds, "write_blif "+output)
	return strings.Join(cmds, "; ")
}

// Tool converts PLA files by invoking the ABC binary once per file.
type Tool struct {
	bin    string
	steps  []string
	output io.Writer
	exec   executor
}

// New creates a Tool that runs bin with the given optimization steps. Tool
// output goes to w; pass io.Discard to silence it.
func New(bin string, steps []string, w io.Writer) *Tool {
	return newTool(bin, steps, w, defaultExec)
}

func newTool(bin string, steps []string, w io.Writer, exec executor) *Tool {
	if w == nil {
		w = io.Discard
	}
	return &Tool{bin: bin, steps: steps, output: w, exec: exec}
}

// Name returns the binary the tool invokes.
func (t *Tool) Name() string { return t.bin }

// Available reports whether the binary can be found on PATH.
func (t *Tool) Available() bool {
	_, err := t.exec.LookPath(t.bin)
	return err == nil
}

// Convert runs `<bin> -c <script>` and blocks until the process exits.
// Whether outputPath was written is up to the tool.
func (t *Tool) Convert(ctx context.Context, inputPath, outputPath string) error {
	args := []string{"-c", Script(inputPath, outputPath, t.steps)}
	if err := t.exec.Run(ctx, t.bin, args, t.output, t.output); err != nil {
		return fmt.Errorf("running %s on %s: %w", t.bin, inputPath, err)
	}
	return nil
}
