package seen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store tracks processed news links so a headline alerts once. Backed by
// an append-only line-oriented file loaded fully at startup. The file only
// grows; bounding it by age is an accepted follow-up outside this design.
type Store struct {
	mu    sync.Mutex
	path  string
	links map[string]struct{}
}

// Open loads the store, creating the file's directory when missing. A
// missing file is an empty store, not an error.
func Open(path string) (*Store, error) {
	s := &Store{
		path:  path,
		links: make(map[string]struct{}),
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create seen-links dir: %w", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("open seen-links file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		link := strings.TrimSpace(scanner.Text())
		if link != "" {
			s.links[link] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read seen-links file: %w", err)
	}

	return s, nil
}

// Has reports whether the link was already processed.
func (s *Store) Has(link string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.links[link]
	return ok
}

// Mark records the link, appending it to the backing file. Marking an
// already-seen link is a no-op.
func (s *Store) Mark(link string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[link]; ok {
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("append seen link: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, link); err != nil {
		return fmt.Errorf("append seen link: %w", err)
	}

	s.links[link] = struct{}{}
	return nil
}

// Len returns the number of recorded links.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.links)
}
