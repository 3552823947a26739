package arcstats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadMetadata reads metadata.json from the root of an Arc export directory.
func LoadMetadata(exportPath string) (Metadata, error) {
	data, err := os.ReadFile(filepath.Join(exportPath, "metadata.json"))
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read export metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse export metadata: %w", err)
	}
	return meta, nil
}

// LoadAllPlaces reads every JSON file under the export's places/ directory.
// Each file holds an array of places. The result maps place ID to place.
func LoadAllPlaces(exportPath string) (map[string]*Place, error) {
	files, err := jsonFiles(filepath.Join(exportPath, "places"))
	if err != nil {
		return nil, err
	}

	places := make(map[string]*Place)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read places file %s: %w", file, err)
		}

		var batch []Place
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("failed to parse places file %s: %w", file, err)
		}
		for i := range batch {
			place := batch[i]
			places[place.ID] = &place
		}
	}

	return places, nil
}

// LoadAllItems reads every JSON file under the export's items/ directory
// (one file per month). Deleted items are skipped.
func LoadAllItems(exportPath string) ([]Item, error) {
	files, err := jsonFiles(filepath.Join(exportPath, "items"))
	if err != nil {
		return nil, err
	}

	var items []Item
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read items file %s: %w", file, err)
		}

		var batch []Item
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("failed to parse items file %s: %w", file, err)
		}
		for _, item := range batch {
			if item.Base.Deleted {
				continue
			}
			items = append(items, item)
		}
	}

	return items, nil
}

// LoadAllItemsWithPlaces loads all timeline items and resolves each visit's
// place through the export's place files. Visits to unknown places keep a nil
// Place.
func LoadAllItemsWithPlaces(exportPath string) ([]ItemWithPlace, error) {
	places, err := LoadAllPlaces(exportPath)
	if err != nil {
		return nil, err
	}
	items, err := LoadAllItems(exportPath)
	if err != nil {
		return nil, err
	}

	result := make([]ItemWithPlace, 0, len(items))
	for _, item := range items {
		var place *Place
		if id := item.PlaceID(); id != "" {
			place = places[id]
		}
		result = append(result, ItemWithPlace{Item: item, Place: place})
	}

	return result, nil
}

// jsonFiles lists the .json files directly inside dir, sorted by name.
func jsonFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read export directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
