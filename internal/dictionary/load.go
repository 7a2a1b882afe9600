package dictionary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadJSON reads a dictionary file mapping each word to its frequency.
func LoadJSON(path string) (*Memory, error) {
	entries, err := ReadJSON(path)
	if err != nil {
		return nil, err
	}
	return NewMemory(entries), nil
}

func ReadJSON(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer file.Close()

	var raw map[string]int
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	entries := make([]Entry, 0, len(raw))
	for word, freq := range raw {
		entries = append(entries, Entry{Word: word, Frequency: freq})
	}
	return entries, nil
}

// ReadEntries picks the reader by extension: .json for a word map, anything
// else for a word list.
func ReadEntries(path string) ([]Entry, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(path)
	}
	return ReadWordList(path)
}

// ReadWordList reads tab separated "word<TAB>frequency" lines. The
// frequency column is optional; '#' and ';' start comments.
func ReadWordList(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, ";") {
			continue
		}
		parts := strings.SplitN(text, "\t", 2)
		entry := Entry{Word: strings.TrimSpace(parts[0])}
		if entry.Word == "" {
			continue
		}
		if len(parts) == 2 {
			freq, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, fmt.Errorf("word list %s line %d: bad frequency: %w", path, line, err)
			}
			entry.Frequency = freq
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return entries, nil
}

func readStringMap(path, what string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s %s: %w", what, path, err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s %s: %w", what, path, err)
	}
	return raw, nil
}
