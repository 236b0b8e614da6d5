package model

// Имена полей записи в хранилище (hash campaign:<slug>)
const (
	FieldDestination      = "destination"
	FieldUTM              = "utm"
	FieldLinkTreeEnabled  = "linkTreeEnabled"
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldDetails          = "details"
	FieldIconEmoji        = "iconEmoji"
	FieldImageURL         = "imageUrl"
	FieldCategory         = "category"
	FieldPinned           = "pinned"
	FieldVideoURL         = "videoUrl"
	FieldFiles            = "files"
	FieldRedirectExternal = "redirectExternal"
)

// AbsentOptionalFields возвращает опциональные поля, которых нет в записи.
// Их нужно удалить из хранилища, чтобы после правки не оставались старые значения.
func AbsentOptionalFields(rec RedirectRecord) []string {
	var fields []string

	if rec.Title == "" {
		fields = append(fields, FieldTitle)
	}
	if rec.Description == "" {
		fields = append(fields, FieldDescription)
	}
	if rec.Details == "" {
		fields = append(fields, FieldDetails)
	}
	if rec.IconEmoji == "" {
		fields = append(fields, FieldIconEmoji)
	}
	if rec.Category == "" {
		fields = append(fields, FieldCategory)
	}
	if rec.ImageURL == "" {
		fields = append(fields, FieldImageURL)
	}
	if rec.VideoURL == "" {
		fields = append(fields, FieldVideoURL)
	}
	if len(rec.Files) == 0 {
		fields = append(fields, FieldFiles)
	}
	if !rec.RedirectExternal {
		fields = append(fields, FieldRedirectExternal)
	}

	return fields
}
