package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeProperties(t *testing.T, raw string) Properties {
	t.Helper()

	var props Properties
	require.NoError(t, json.Unmarshal([]byte(raw), &props))
	return props
}

func TestProperties_Text(t *testing.T) {
	props := decodeProperties(t, `{
		"rich": {"type": "rich_text", "rich_text": [{"plain_text": "Hello, "}, {"plain_text": "world "}]},
		"title": {"type": "title", "title": [{"plain_text": "  Title  "}]},
		"url": {"type": "url", "url": "  https://example.com  "},
		"emptyRich": {"type": "rich_text", "rich_text": [{"plain_text": "   "}]},
		"nullURL": {"type": "url", "url": null},
		"select": {"type": "select", "select": {"name": "Guides"}},
		"number": {"type": "number", "number": 3}
	}`)

	tests := []struct {
		name       string
		property   string
		expected   string
		expectedOK bool
	}{
		{name: "Rich text runs are joined", property: "rich", expected: "Hello, world", expectedOK: true},
		{name: "Title is trimmed", property: "title", expected: "Title", expectedOK: true},
		{name: "URL is trimmed", property: "url", expected: "https://example.com", expectedOK: true},
		{name: "Blank rich text is absent", property: "emptyRich", expected: "", expectedOK: false},
		{name: "Null URL is absent", property: "nullURL", expected: "", expectedOK: false},
		{name: "Select name", property: "select", expected: "Guides", expectedOK: true},
		{name: "Number is not text", property: "number", expected: "", expectedOK: false},
		{name: "Missing property", property: "missing", expected: "", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := props.Text(tt.property)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestProperties_Checkbox(t *testing.T) {
	props := decodeProperties(t, `{
		"on": {"type": "checkbox", "checkbox": true},
		"off": {"type": "checkbox", "checkbox": false},
		"wrongType": {"type": "rich_text", "rich_text": []}
	}`)

	value, ok := props.Checkbox("on")
	assert.True(t, ok)
	assert.True(t, value)

	value, ok = props.Checkbox("off")
	assert.True(t, ok)
	assert.False(t, value)

	_, ok = props.Checkbox("wrongType")
	assert.False(t, ok)

	_, ok = props.Checkbox("missing")
	assert.False(t, ok)
}

func TestProperties_Number(t *testing.T) {
	props := decodeProperties(t, `{
		"clicks": {"type": "number", "number": 41},
		"empty": {"type": "number", "number": null},
		"text": {"type": "rich_text", "rich_text": []}
	}`)

	value, ok := props.Number("clicks")
	assert.True(t, ok)
	assert.Equal(t, float64(41), value)

	value, ok = props.Number("empty")
	assert.True(t, ok)
	assert.Zero(t, value)

	_, ok = props.Number("text")
	assert.False(t, ok)
}

func TestProperties_Flag(t *testing.T) {
	props := decodeProperties(t, `{
		"checked": {"type": "checkbox", "checkbox": true},
		"yes": {"type": "select", "select": {"name": " yes "}},
		"no": {"type": "select", "select": {"name": "no"}},
		"text": {"type": "rich_text", "rich_text": [{"plain_text": "true"}]}
	}`)

	assert.True(t, props.Flag("checked"))
	assert.True(t, props.Flag("yes"))
	assert.False(t, props.Flag("no"))
	assert.False(t, props.Flag("text"))
	assert.False(t, props.Flag("missing"))
}

func TestFileObject_URL(t *testing.T) {
	props := decodeProperties(t, `{
		"files": {"type": "files", "files": [
			{"name": "a", "type": "file", "file": {"url": "https://s3.example.com/a"}},
			{"name": "b", "type": "external", "external": {"url": " https://example.com/b "}},
			{"name": "c", "type": "file"}
		]}
	}`)

	files := props.Files("files")
	require.Len(t, files, 3)
	assert.Equal(t, "https://s3.example.com/a", files[0].URL())
	assert.Equal(t, "https://example.com/b", files[1].URL())
	assert.Empty(t, files[2].URL())
}
