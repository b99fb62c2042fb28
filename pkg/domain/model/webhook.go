package model

import (
	"github.com/secmon-lab/hooksync/pkg/domain/types"
)

// Webhook represents a project webhook as held by the GitLab server.
// Reconciliation treats two webhooks as the same subscription iff their
// URL fields are byte-equal; no other attribute participates in matching.
type Webhook struct {
	ID                    types.HookID `json:"id"`
	URL                   string       `json:"url"`
	PushEvents            bool         `json:"push_events"`
	MergeRequestsEvents   bool         `json:"merge_requests_events"`
	IssuesEvents          bool         `json:"issues_events"`
	EnableSSLVerification bool         `json:"enable_ssl_verification"`
}

// WebhookSpec is the desired state sent when creating a webhook.
type WebhookSpec struct {
	URL                   string `json:"url"`
	Token                 string `json:"token,omitempty"`
	PushEvents            bool   `json:"push_events"`
	MergeRequestsEvents   bool   `json:"merge_requests_events"`
	IssuesEvents          bool   `json:"issues_events"`
	EnableSSLVerification bool   `json:"enable_ssl_verification"`
}
