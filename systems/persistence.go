package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSelection is the viewer state stored on disk
type SavedSelection struct {
	Level string `json:"level"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for selection storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-walls",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSelection returns the last selected level name, or "" if none.
func LoadSelection() (string, error) {
	if !gdataInitialized || gdataManager == nil {
		return "", nil
	}

	data, err := gdataManager.LoadItem("selection")
	if err != nil {
		log.Printf("Warning: Could not load selection: %v", err)
		return "", nil
	}
	if len(data) == 0 {
		return "", nil
	}

	var saved SavedSelection
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved selection: %v", err)
		return "", err
	}
	return saved.Level, nil
}

// SaveSelection stores the selected level name. It is a no-op until
// InitPersistence succeeds.
func SaveSelection(level string) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedSelection{Level: level})
	if err != nil {
		log.Printf("Warning: Could not serialize selection: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("selection", data); err != nil {
		log.Printf("Warning: Could not save selection: %v", err)
		return err
	}
	return nil
}
