package notion

// Icon - иконка страницы
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
}

// Page - страница Notion в объеме, нужном для синхронизации ссылок
type Page struct {
	Object         string     `json:"object"`
	ID             string     `json:"id"`
	URL            string     `json:"url,omitempty"`
	Archived       bool       `json:"archived"`
	LastEditedTime string     `json:"last_edited_time,omitempty"`
	Icon           *Icon      `json:"icon,omitempty"`
	Properties     Properties `json:"properties"`
}

// Emoji возвращает emoji-иконку страницы, если она задана
func (p *Page) Emoji() string {
	if p == nil || p.Icon == nil || p.Icon.Type != "emoji" {
		return ""
	}
	return p.Icon.Emoji
}
