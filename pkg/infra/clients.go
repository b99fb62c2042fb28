package infra

import (
	"net/http"

	"github.com/secmon-lab/hooksync/pkg/domain/interfaces"
)

type Clients struct {
	catalog    interfaces.Catalog
	webhookSvc interfaces.WebhookService
	httpClient HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Catalog() interfaces.Catalog {
	return x.catalog
}
func (x *Clients) WebhookService() interfaces.WebhookService {
	return x.webhookSvc
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithCatalog(client interfaces.Catalog) Option {
	return func(x *Clients) {
		x.catalog = client
	}
}

func WithWebhookService(client interfaces.WebhookService) Option {
	return func(x *Clients) {
		x.webhookSvc = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
