package store

const (
	// KeyPrefix - префикс ключей записей в Redis: campaign:<slug>
	KeyPrefix = "campaign:"

	scanBatchSize = 100
)

// RecordKey возвращает ключ записи в Redis
func RecordKey(slug string) string {
	return KeyPrefix + slug
}
