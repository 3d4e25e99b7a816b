package ticket

import (
	"context"
	"fmt"
	"strconv"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"callwatch.app/callwatch/internal/channel"
)

type gitLabTicketCreator struct {
	client    *gitlab.Client
	projectID int64
	labels    []string
}

// NewGitLabTicketCreator creates incident tickets as GitLab issues in the
// configured project. baseURL may be empty for gitlab.com.
func NewGitLabTicketCreator(baseURL, token string, projectID int64, labels []string) (channel.TicketCreator, error) {
	var opts []gitlab.ClientOptionFunc
	if baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gitlab client: %w", err)
	}

	return &gitLabTicketCreator{
		client:    client,
		projectID: projectID,
		labels:    labels,
	}, nil
}

func (c *gitLabTicketCreator) CreateTicket(ctx context.Context, fields channel.TicketFields) (string, error) {
	opts := &gitlab.CreateIssueOptions{
		Title:       gitlab.Ptr(fields.Title),
		Description: gitlab.Ptr(fields.Description),
	}

	labels := append(append([]string{}, c.labels...), fields.Labels...)
	if len(labels) > 0 {
		labelOpts := gitlab.LabelOptions(labels)
		opts.Labels = &labelOpts
	}

	issue, _, err := c.client.Issues.CreateIssue(c.projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("creating ticket: %w", err)
	}

	return strconv.FormatInt(issue.IID, 10), nil
}
