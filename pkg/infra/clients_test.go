package infra_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hooksync/pkg/domain/mock"
	"github.com/secmon-lab/hooksync/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		gt.V(t, clients.Catalog()).Equal(nil)
		gt.V(t, clients.WebhookService()).Equal(nil)
	})

	t.Run("WithCatalog option sets catalog client", func(t *testing.T) {
		mockCatalog := &mock.CatalogMock{}
		clients := infra.New(infra.WithCatalog(mockCatalog))
		gt.V(t, clients.Catalog()).Equal(mockCatalog)
	})

	t.Run("WithWebhookService option sets webhook client", func(t *testing.T) {
		mockWS := &mock.WebhookServiceMock{}
		clients := infra.New(infra.WithWebhookService(mockWS))
		gt.V(t, clients.WebhookService()).Equal(mockWS)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockCatalog := &mock.CatalogMock{}
		mockWS := &mock.WebhookServiceMock{}
		mockHTTP := &mockHTTPClient{}

		clients := infra.New(
			infra.WithCatalog(mockCatalog),
			infra.WithWebhookService(mockWS),
			infra.WithHTTPClient(mockHTTP),
		)

		gt.V(t, clients.Catalog()).Equal(mockCatalog)
		gt.V(t, clients.WebhookService()).Equal(mockWS)
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
