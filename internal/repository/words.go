package repository

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	errs "gamebot/internal/errors"
)

// WordList is the canonical five letter word set, loaded once at startup.
// Membership checks and the daily draw both run against the same list.
type WordList struct {
	words []string
	index map[string]struct{}
}

func NewWordList(words []string) *WordList {
	list := &WordList{
		index: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := list.index[w]; ok {
			continue
		}
		list.words = append(list.words, w)
		list.index[w] = struct{}{}
	}
	return list
}

func LoadWordList(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}

	list := NewWordList(words)
	if list.Len() == 0 {
		return nil, errs.ErrEmptyWordList
	}
	return list, nil
}

func (w *WordList) Contains(word string) bool {
	_, ok := w.index[strings.ToLower(word)]
	return ok
}

func (w *WordList) Random() string {
	return w.words[rand.Intn(len(w.words))]
}

func (w *WordList) Len() int {
	return len(w.words)
}
