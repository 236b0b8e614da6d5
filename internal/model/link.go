package model

// UTM содержит метки кампании, сохраняемые вместе с записью
type UTM struct {
	Source   string `json:"source,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Medium   string `json:"medium,omitempty"`
}

// IsZero сообщает, что ни одна метка не задана
func (u UTM) IsZero() bool {
	return u.Source == "" && u.Campaign == "" && u.Medium == ""
}

// FileAttachment описывает файл, прикрепленный к странице Notion
type FileAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Kind string `json:"kind"`
	Ext  string `json:"ext"`
}

// RedirectRecord представляет одну ссылку link tree. Slug является ключом хранения
// и не меняется после создания. Пустая строка у опциональных полей означает отсутствие.
type RedirectRecord struct {
	Slug             string           `json:"slug"`
	Destination      string           `json:"destination"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Details          string           `json:"details,omitempty"`
	IconEmoji        string           `json:"iconEmoji,omitempty"`
	LinkTreeEnabled  bool             `json:"linkTreeEnabled"`
	Pinned           bool             `json:"pinned"`
	Category         string           `json:"category,omitempty"`
	ImageURL         string           `json:"imageUrl,omitempty"`
	VideoURL         string           `json:"videoUrl,omitempty"`
	Files            []FileAttachment `json:"files,omitempty"`
	UTM              UTM              `json:"utm"`
	RedirectExternal bool             `json:"redirectExternal,omitempty"`
}

// ResolvedLink - итоговый адрес для href и признак внешней ссылки
type ResolvedLink struct {
	Destination string `json:"destination"`
	IsExternal  bool   `json:"isExternal"`
}

// PublicLink - представление записи для публичного списка
type PublicLink struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Details     string           `json:"details,omitempty"`
	IconEmoji   string           `json:"iconEmoji,omitempty"`
	Pinned      bool             `json:"pinned"`
	Category    string           `json:"category,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	VideoURL    string           `json:"videoUrl,omitempty"`
	Files       []FileAttachment `json:"files,omitempty"`
	Destination string           `json:"destination"`
	IsExternal  bool             `json:"isExternal"`
}

// NewPublicLink собирает публичное представление из записи и разрешенного адреса
func NewPublicLink(rec RedirectRecord, resolved ResolvedLink) PublicLink {
	return PublicLink{
		Slug:        rec.Slug,
		Title:       rec.Title,
		Description: rec.Description,
		Details:     rec.Details,
		IconEmoji:   rec.IconEmoji,
		Pinned:      rec.Pinned,
		Category:    rec.Category,
		ImageURL:    rec.ImageURL,
		VideoURL:    rec.VideoURL,
		Files:       rec.Files,
		Destination: resolved.Destination,
		IsExternal:  resolved.IsExternal,
	}
}

// RedirectTarget - проверенная цель для /api/redirect
type RedirectTarget struct {
	URL      string
	Relative bool
}

// AdminLink - запись для административного списка, включая отключенные
type AdminLink struct {
	RedirectRecord
	ShortURL string       `json:"shortUrl"`
	Resolved ResolvedLink `json:"resolved"`
}
