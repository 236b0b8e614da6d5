package notion

import (
	"path"
	"strings"

	"github.com/avc-dev/linktree/internal/model"
)

// legacyLinkTreeType - значение свойства Type, которым ссылки отмечались до появления флага
const legacyLinkTreeType = "LinkTree"

// PropertyNames задает имена свойств базы Notion. Для каждого поля перечислены
// кандидаты, берется первый присутствующий.
type PropertyNames struct {
	Slug             []string
	Destination      []string
	Title            []string
	Description      []string
	Details          []string
	Icon             []string
	LinkTree         []string
	Type             []string
	Pinned           []string
	Category         []string
	Image            []string
	Video            []string
	Files            []string
	UTMSource        []string
	UTMCampaign      []string
	UTMMedium        []string
	RedirectExternal []string
}

// DefaultPropertyNames возвращает имена свойств рабочей базы ссылок
func DefaultPropertyNames() PropertyNames {
	return PropertyNames{
		Slug:             []string{"Slug", "slug"},
		Destination:      []string{"Destination", "URL", "Link"},
		Title:            []string{"Title", "Name"},
		Description:      []string{"Description"},
		Details:          []string{"Details"},
		Icon:             []string{"Icon", "Emoji"},
		LinkTree:         []string{"LinkTree", "Link Tree", "Link Tree Enabled"},
		Type:             []string{"Type"},
		Pinned:           []string{"Pinned"},
		Category:         []string{"Category"},
		Image:            []string{"Image", "Image URL"},
		Video:            []string{"Video", "Video URL"},
		Files:            []string{"Files", "Attachments"},
		UTMSource:        []string{"UTM Source"},
		UTMCampaign:      []string{"UTM Campaign"},
		UTMMedium:        []string{"UTM Medium"},
		RedirectExternal: []string{"Redirect External"},
	}
}

// Mapper переводит страницу Notion в RedirectRecord
type Mapper struct {
	names PropertyNames
}

// NewMapper создает Mapper с заданными именами свойств
func NewMapper(names PropertyNames) *Mapper {
	return &Mapper{names: names}
}

// Map никогда не возвращает ошибку: отсутствующие или битые свойства
// превращаются в пустые значения, решение о пригодности записи принимает вызывающий.
func (m *Mapper) Map(page *Page) model.RedirectRecord {
	if page == nil {
		return model.RedirectRecord{}
	}
	props := page.Properties

	rec := model.RedirectRecord{
		Slug:        m.text(props, m.names.Slug),
		Destination: SanitizeText(m.text(props, m.names.Destination)),
		Title:       m.text(props, m.names.Title),
		Description: m.text(props, m.names.Description),
		Details:     m.text(props, m.names.Details),
		IconEmoji:   m.text(props, m.names.Icon),
		Category:    m.text(props, m.names.Category),
		ImageURL:    m.media(props, m.names.Image),
		VideoURL:    m.media(props, m.names.Video),
		Files:       m.files(props, m.names.Files),
		UTM: model.UTM{
			Source:   m.text(props, m.names.UTMSource),
			Campaign: m.text(props, m.names.UTMCampaign),
			Medium:   m.text(props, m.names.UTMMedium),
		},
		LinkTreeEnabled:  m.enabled(props),
		Pinned:           m.flag(props, m.names.Pinned),
		RedirectExternal: m.flag(props, m.names.RedirectExternal),
	}

	if rec.IconEmoji == "" {
		rec.IconEmoji = page.Emoji()
	}

	return rec
}

func (m *Mapper) enabled(props Properties) bool {
	if m.flag(props, m.names.LinkTree) {
		return true
	}

	for _, name := range m.names.Type {
		if value, ok := props.SelectName(name); ok && value == legacyLinkTreeType {
			return true
		}
	}

	return false
}

func (m *Mapper) text(props Properties, candidates []string) string {
	for _, name := range candidates {
		if value, ok := props.Text(name); ok {
			return value
		}
	}
	return ""
}

func (m *Mapper) flag(props Properties, candidates []string) bool {
	for _, name := range candidates {
		if _, ok := props[name]; ok {
			return props.Flag(name)
		}
	}
	return false
}

// media берет адрес из url/rich_text свойства или первый файл свойства files
func (m *Mapper) media(props Properties, candidates []string) string {
	for _, name := range candidates {
		if value, ok := props.Text(name); ok {
			return SanitizeText(value)
		}
		for _, file := range props.Files(name) {
			if u := file.URL(); u != "" {
				return u
			}
		}
	}
	return ""
}

func (m *Mapper) files(props Properties, candidates []string) []model.FileAttachment {
	for _, name := range candidates {
		objects := props.Files(name)
		if len(objects) == 0 {
			continue
		}

		files := make([]model.FileAttachment, 0, len(objects))
		for _, obj := range objects {
			u := obj.URL()
			if u == "" {
				continue
			}
			ext := fileExt(obj.Name, u)
			files = append(files, model.FileAttachment{
				Name: strings.TrimSpace(obj.Name),
				URL:  u,
				Kind: fileKind(ext),
				Ext:  ext,
			})
		}
		if len(files) > 0 {
			return files
		}
	}
	return nil
}

// SanitizeText убирает BOM и неразрывные пробелы, которые Notion оставляет при вставке
func SanitizeText(s string) string {
	s = strings.ReplaceAll(s, "\uFEFF", "")
	s = strings.ReplaceAll(s, "\u00A0", "")
	return strings.TrimSpace(s)
}

func fileExt(name, rawURL string) string {
	ext := path.Ext(name)
	if ext == "" {
		u := rawURL
		if i := strings.IndexAny(u, "?#"); i >= 0 {
			u = u[:i]
		}
		ext = path.Ext(u)
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func fileKind(ext string) string {
	switch ext {
	case "png", "jpg", "jpeg", "gif", "webp", "svg", "avif":
		return "image"
	case "mp4", "mov", "webm", "m4v":
		return "video"
	case "mp3", "wav", "m4a", "ogg":
		return "audio"
	case "pdf":
		return "pdf"
	case "doc", "docx", "xls", "xlsx", "ppt", "pptx", "csv", "txt":
		return "document"
	default:
		return "file"
	}
}
