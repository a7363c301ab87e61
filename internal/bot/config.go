package bot

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/EgorLis/euphbot/internal/euclient"
)

// FileConfig — то, что бот-процесс читает из conf/*.json.
type FileConfig struct {
	Room         string `json:"room"`
	Nick         string `json:"nick"`
	Host         string `json:"host,omitempty"`
	Insecure     bool   `json:"insecure,omitempty"`
	ShortHelp    string `json:"short_help,omitempty"`
	LongHelp     string `json:"long_help,omitempty"`
	GenericPing  string `json:"generic_ping,omitempty"`
	SpecificPing string `json:"specific_ping,omitempty"`
	Reconnect    bool   `json:"reconnect"`
}

func (fc FileConfig) Validate() error {
	if fc.Room == "" {
		return errors.New("room is required")
	}
	if fc.Nick == "" {
		return errors.New("nick is required")
	}
	return nil
}

func (fc FileConfig) Connection() euclient.Config {
	return euclient.Config{
		Room:     fc.Room,
		Nick:     fc.Nick,
		Host:     fc.Host,
		Insecure: fc.Insecure,
	}
}

func (fc FileConfig) Bot(rules []Rule) Config {
	return Config{
		ShortHelp:    fc.ShortHelp,
		LongHelp:     fc.LongHelp,
		GenericPing:  fc.GenericPing,
		SpecificPing: fc.SpecificPing,
		Rules:        rules,
	}
}

type ConfigStore struct {
	mu   sync.Mutex
	path string
	data FileConfig
}

// LoadConfigStore читает конфиг; если файла нет — создаёт его из defaults.
func LoadConfigStore(path string, defaults FileConfig) (*ConfigStore, error) {
	cs := &ConfigStore{path: path, data: defaults}
	if err := cs.Load(); err != nil {
		return nil, err
	}
	return cs, nil
}

func (cs *ConfigStore) Data() FileConfig {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.data
}

func (cs *ConfigStore) Update(f func(*FileConfig)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	f(&cs.data)
}

func (cs *ConfigStore) Load() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	b, err := os.ReadFile(cs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cs.save() // создаём с дефолтами
		}
		return err
	}
	return json.Unmarshal(b, &cs.data)
}

func (cs *ConfigStore) Save() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.save()
}

func (cs *ConfigStore) save() error {
	if err := os.MkdirAll(filepath.Dir(cs.path), 0755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(&cs.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cs.path, b, 0644)
}
