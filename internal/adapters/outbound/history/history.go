package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rentacar/rentacar/internal/domain"
)

const historyFile = ".rentacar/history/rentals.json"

// FileHistory implements domain.RentalHistory using JSON file storage.
type FileHistory struct {
	mu sync.Mutex
}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dataDir string, entry domain.RentalEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load(dataDir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(dataDir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dataDir string) ([]domain.RentalEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load(dataDir)
}

func (h *FileHistory) load(dataDir string) ([]domain.RentalEntry, error) {
	fp := filepath.Join(dataDir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RentalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
