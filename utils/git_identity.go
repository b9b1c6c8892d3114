package utils

import (
	"fmt"
	"os/exec"
	"strings"
)

// GitIdentity reads author identity from the local git configuration, used
// as a fallback when no identity is supplied via flags, config or env.
type GitIdentity struct {
	workingDir string
}

// NewGitIdentity creates a new GitIdentity instance
func NewGitIdentity(workingDir string) *GitIdentity {
	return &GitIdentity{workingDir: workingDir}
}

// CheckGitRepo checks if the working directory is inside a git repository
func (g *GitIdentity) CheckGitRepo() error {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = g.workingDir
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("not a git repository")
	}
	return nil
}

// UserName returns git config user.name, or an error when unset.
func (g *GitIdentity) UserName() (string, error) {
	return g.configValue("user.name")
}

// UserEmail returns git config user.email, or an error when unset.
func (g *GitIdentity) UserEmail() (string, error) {
	return g.configValue("user.email")
}

func (g *GitIdentity) configValue(key string) (string, error) {
	cmd := exec.Command("git", "config", "--get", key)
	cmd.Dir = g.workingDir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get git config %s: %w", key, err)
	}
	value := strings.TrimSpace(string(output))
	if value == "" {
		return "", fmt.Errorf("git config %s is empty", key)
	}
	return value, nil
}
