package profiles

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/danieljhkim/dupekeys/internal/fsops"
)

// Source provides the raw profile listing.
type Source interface {
	// Fetch returns the listing with banner lines already removed.
	Fetch(ctx context.Context) ([]byte, error)

	// Describe returns a short human description of where data comes from.
	Describe() string

	// RequiresPrivilege reports whether Fetch needs root to see every
	// installed profile.
	RequiresPrivilege() bool
}

// CommandSource runs the host profiles utility and captures its stdout.
type CommandSource struct {
	Bin    string
	Args   []string
	Banner string
}

// NewCommandSource creates a CommandSource.
func NewCommandSource(bin string, args []string, banner string) *CommandSource {
	return &CommandSource{Bin: bin, Args: args, Banner: banner}
}

// Fetch runs the command to completion and returns its filtered stdout.
func (s *CommandSource) Fetch(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, s.Bin, s.Args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running profiles command", "bin", s.Bin, "args", s.Args)
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%w: %s: %v: %s", ErrAcquire, s.Bin, err, msg)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrAcquire, s.Bin, err)
	}
	slog.Debug("profiles command finished", "bytes", stdout.Len())

	return FilterBanner(stdout.Bytes(), s.Banner), nil
}

// Describe returns the command line.
func (s *CommandSource) Describe() string {
	return strings.TrimSpace(s.Bin + " " + strings.Join(s.Args, " "))
}

// RequiresPrivilege returns true: without root the utility omits profiles.
func (s *CommandSource) RequiresPrivilege() bool {
	return true
}

// FileSource reads a previously captured listing from disk.
type FileSource struct {
	fs     fsops.FS
	path   string
	banner string
}

// NewFileSource creates a FileSource.
func NewFileSource(fs fsops.FS, path, banner string) *FileSource {
	return &FileSource{fs: fs, path: path, banner: banner}
}

// Fetch reads the file and removes banner lines.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAcquire, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s does not exist", ErrAcquire, s.path)
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAcquire, err)
	}
	slog.Debug("read profile listing", "path", s.path, "bytes", len(data))

	return FilterBanner(data, s.banner), nil
}

// Describe returns the file path.
func (s *FileSource) Describe() string {
	return s.path
}

// RequiresPrivilege returns false: reading a capture needs no root.
func (s *FileSource) RequiresPrivilege() bool {
	return false
}

// FilterBanner drops every line containing banner. An empty banner leaves
// data untouched.
func FilterBanner(data []byte, banner string) []byte {
	if banner == "" || !bytes.Contains(data, []byte(banner)) {
		return data
	}

	lines := bytes.SplitAfter(data, []byte("\n"))
	out := make([]byte, 0, len(data))
	for _, line := range lines {
		if bytes.Contains(line, []byte(banner)) {
			continue
		}
		out = append(out, line...)
	}
	return out
}
