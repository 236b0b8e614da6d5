package notion

import (
	"encoding/json"
	"strings"
)

// PropertyType - тип свойства страницы Notion
type PropertyType string

const (
	PropertyRichText PropertyType = "rich_text"
	PropertyTitle    PropertyType = "title"
	PropertyURL      PropertyType = "url"
	PropertyCheckbox PropertyType = "checkbox"
	PropertySelect   PropertyType = "select"
	PropertyNumber   PropertyType = "number"
	PropertyFiles    PropertyType = "files"
)

type TextRun struct {
	PlainText string `json:"plain_text"`
}

type SelectOption struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type FileObject struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	File     *struct {
		URL string `json:"url"`
	} `json:"file,omitempty"`
	External *struct {
		URL string `json:"url"`
	} `json:"external,omitempty"`
}

// URL возвращает адрес файла независимо от того, загружен он в Notion или внешний
func (f FileObject) URL() string {
	switch {
	case f.File != nil:
		return strings.TrimSpace(f.File.URL)
	case f.External != nil:
		return strings.TrimSpace(f.External.URL)
	default:
		return ""
	}
}

// Property - одно свойство страницы. Заполнено только поле, соответствующее Type.
type Property struct {
	Type     PropertyType  `json:"type"`
	RichText []TextRun     `json:"rich_text,omitempty"`
	Title    []TextRun     `json:"title,omitempty"`
	URL      *string       `json:"url,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Files    []FileObject  `json:"files,omitempty"`
}

// Properties хранит свойства страницы в сыром виде и декодирует их по запросу.
// Свойство неожиданной формы считается отсутствующим: схема базы в Notion
// меняется, и частичные данные не должны ломать синхронизацию.
type Properties map[string]json.RawMessage

// Lookup декодирует свойство по имени
func (p Properties) Lookup(name string) (Property, bool) {
	raw, ok := p[name]
	if !ok || len(raw) == 0 {
		return Property{}, false
	}

	var prop Property
	if err := json.Unmarshal(raw, &prop); err != nil {
		return Property{}, false
	}

	return prop, true
}

// Text возвращает текст свойства rich_text, title или url.
// Пустое значение считается отсутствующим.
func (p Properties) Text(name string) (string, bool) {
	prop, ok := p.Lookup(name)
	if !ok {
		return "", false
	}

	var text string
	switch prop.Type {
	case PropertyRichText:
		text = joinRuns(prop.RichText)
	case PropertyTitle:
		text = joinRuns(prop.Title)
	case PropertyURL:
		if prop.URL != nil {
			text = strings.TrimSpace(*prop.URL)
		}
	case PropertySelect:
		if prop.Select != nil {
			text = strings.TrimSpace(prop.Select.Name)
		}
	default:
		return "", false
	}

	if text == "" {
		return "", false
	}

	return text, true
}

// Checkbox возвращает значение свойства checkbox
func (p Properties) Checkbox(name string) (bool, bool) {
	prop, ok := p.Lookup(name)
	if !ok || prop.Type != PropertyCheckbox || prop.Checkbox == nil {
		return false, false
	}

	return *prop.Checkbox, true
}

// SelectName возвращает имя выбранной опции select
func (p Properties) SelectName(name string) (string, bool) {
	prop, ok := p.Lookup(name)
	if !ok || prop.Type != PropertySelect || prop.Select == nil {
		return "", false
	}

	return prop.Select.Name, true
}

// Number возвращает значение числового свойства; пустое число считается нулем
func (p Properties) Number(name string) (float64, bool) {
	prop, ok := p.Lookup(name)
	if !ok || prop.Type != PropertyNumber {
		return 0, false
	}
	if prop.Number == nil {
		return 0, true
	}

	return *prop.Number, true
}

// Files возвращает файлы свойства files
func (p Properties) Files(name string) []FileObject {
	prop, ok := p.Lookup(name)
	if !ok || prop.Type != PropertyFiles {
		return nil
	}

	return prop.Files
}

// Flag трактует свойство как логический флаг: checkbox берется как есть,
// select считается включенным для опций "true", "yes" и "enabled" без учета регистра.
func (p Properties) Flag(name string) bool {
	prop, ok := p.Lookup(name)
	if !ok {
		return false
	}

	switch prop.Type {
	case PropertyCheckbox:
		return prop.Checkbox != nil && *prop.Checkbox
	case PropertySelect:
		return prop.Select != nil && isTruthyOption(prop.Select.Name)
	default:
		return false
	}
}

func isTruthyOption(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "true", "yes", "enabled":
		return true
	default:
		return false
	}
}

func joinRuns(runs []TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.PlainText)
	}
	return strings.TrimSpace(b.String())
}
