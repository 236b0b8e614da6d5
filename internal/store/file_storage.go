package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/avc-dev/linktree/internal/model"
)

const (
	opSave         = "save"
	opDeleteFields = "delete_fields"
)

// FileEntry - одна строка журнала изменений
type FileEntry struct {
	UUID   string                `json:"uuid"`
	Op     string                `json:"op"`
	Slug   string                `json:"slug"`
	Record *model.RedirectRecord `json:"record,omitempty"`
	Fields []string              `json:"fields,omitempty"`
}

// FileStorage ведет журнал изменений в файле формата JSON lines
type FileStorage struct {
	filePath string
	mutex    sync.Mutex
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load читает все записи журнала. Отсутствующий файл означает пустой журнал.
func (fs *FileStorage) Load() ([]FileEntry, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.Open(fs.filePath)
	if os.IsNotExist(err) {
		return []FileEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var entries []FileEntry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var entry FileEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return entries, nil
}

// Append дописывает одну запись в конец журнала
func (fs *FileStorage) Append(entry FileEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.OpenFile(fs.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
