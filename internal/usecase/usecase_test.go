package usecase

import (
	"encoding/json"
	"testing"

	"github.com/avc-dev/linktree/internal/cache"
	"github.com/avc-dev/linktree/internal/config"
	"github.com/avc-dev/linktree/internal/mocks"
	"github.com/avc-dev/linktree/internal/model"
	"github.com/avc-dev/linktree/internal/notion"
	"github.com/avc-dev/linktree/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	slugProp    = `"Slug": {"type": "rich_text", "rich_text": [{"plain_text": "promo"}]}`
	titleProp   = `"Name": {"type": "title", "title": [{"plain_text": "Spring promo"}]}`
	destProp    = `"Destination": {"type": "url", "url": "https://example.com/spring"}`
	enabledProp = `"LinkTree": {"type": "checkbox", "checkbox": true}`
	imageProp   = `"Image": {"type": "url", "url": "https://cdn.example.com/spring.png"}`
)

type testDeps struct {
	notion      *mocks.MockNotionClient
	repo        *mocks.MockLinkRepository
	revalidator *mocks.MockRevalidator
	alerter     *mocks.MockAlerter
	cache       *cache.TagCache[[]model.PublicLink]
}

func newTestUsecase(t *testing.T) (*LinkUsecase, testDeps) {
	t.Helper()

	deps := testDeps{
		notion:      mocks.NewMockNotionClient(t),
		repo:        mocks.NewMockLinkRepository(t),
		revalidator: mocks.NewMockRevalidator(t),
		alerter:     mocks.NewMockAlerter(t),
		cache:       cache.NewTagCache[[]model.PublicLink](0),
	}

	u := NewLinkUsecase(Dependencies{
		Notion:      deps.notion,
		Mapper:      notion.NewMapper(notion.DefaultPropertyNames()),
		Repo:        deps.repo,
		Resolver:    service.NewLinkResolver(zap.NewNop()),
		Cache:       deps.cache,
		Revalidator: deps.revalidator,
		Alerter:     deps.alerter,
	}, config.NewDefaultConfig(), zap.NewNop())

	return u, deps
}

// testPage собирает страницу Notion из JSON описаний свойств
func testPage(t *testing.T, archived bool, props ...string) *notion.Page {
	t.Helper()

	raw := `{"object": "page", "id": "page-1", "properties": {`
	for i, p := range props {
		if i > 0 {
			raw += ","
		}
		raw += p
	}
	raw += `}}`

	var page notion.Page
	require.NoError(t, json.Unmarshal([]byte(raw), &page))
	page.Archived = archived
	return &page
}
