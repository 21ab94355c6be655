package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// resolveProjectID accepts a project name (case-insensitive), a full UUID or
// a UUID prefix and resolves it against the projects the actor can see.
func resolveProjectID(ctx context.Context, app *App, actor domain.User, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx, actor)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveChannelID matches a channel by ID or name within one project.
func resolveChannelID(p *domain.Project, input string) (string, error) {
	for _, c := range p.MediaPlan {
		if c.ID == input || strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("channel not found: %q", input)
}
