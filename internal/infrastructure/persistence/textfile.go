package persistence

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/candicorner/inventory/internal/domain/inventory"
	"github.com/candicorner/inventory/internal/domain/shared"
)

const textFileFieldCount = 5

// TextFileRepository implements BraceletRepository on a plain text file.
// Each record is one line of comma-separated fields:
//
//	id,description,quantity,price,status
//
// The separator is not escaped, so descriptions containing commas cannot
// be stored faithfully. Every mutation rewrites the whole file.
type TextFileRepository struct {
	mu   sync.Mutex
	path string
}

// NewTextFileRepository creates a TextFileRepository backed by the given
// file, creating an empty file if none exists.
func NewTextFileRepository(path string) (*TextFileRepository, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return nil, shared.NewStorageError("open inventory file", err)
	}
	if err := file.Close(); err != nil {
		return nil, shared.NewStorageError("open inventory file", err)
	}
	return &TextFileRepository{path: path}, nil
}

// FindAll returns all bracelets in file order
func (r *TextFileRepository) FindAll(ctx context.Context) ([]inventory.Bracelet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByID finds a bracelet by its ID, ignoring case
func (r *TextFileRepository) FindByID(ctx context.Context, id string) (*inventory.Bracelet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bracelets, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range bracelets {
		if strings.EqualFold(bracelets[i].ID, id) {
			return &bracelets[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// ExistsByID reports whether a bracelet with the given ID exists, ignoring case
func (r *TextFileRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bracelets, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range bracelets {
		if strings.EqualFold(bracelets[i].ID, id) {
			return true, nil
		}
	}
	return false, nil
}

// Insert appends a new bracelet record
func (r *TextFileRepository) Insert(ctx context.Context, bracelet *inventory.Bracelet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bracelets, err := r.load()
	if err != nil {
		return err
	}
	for i := range bracelets {
		if strings.EqualFold(bracelets[i].ID, bracelet.ID) {
			return shared.ErrAlreadyExists
		}
	}
	bracelets = append(bracelets, *bracelet)
	return r.save(bracelets)
}

// Update rewrites an existing bracelet record in place
func (r *TextFileRepository) Update(ctx context.Context, bracelet *inventory.Bracelet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bracelets, err := r.load()
	if err != nil {
		return err
	}
	for i := range bracelets {
		if strings.EqualFold(bracelets[i].ID, bracelet.ID) {
			bracelets[i].Description = bracelet.Description
			bracelets[i].Quantity = bracelet.Quantity
			bracelets[i].Price = bracelet.Price
			bracelets[i].Status = bracelet.Status
			return r.save(bracelets)
		}
	}
	return shared.ErrNotFound
}

// Delete removes a bracelet record by its ID, ignoring case
func (r *TextFileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bracelets, err := r.load()
	if err != nil {
		return err
	}
	for i := range bracelets {
		if strings.EqualFold(bracelets[i].ID, id) {
			bracelets = append(bracelets[:i], bracelets[i+1:]...)
			return r.save(bracelets)
		}
	}
	return shared.ErrNotFound
}

// load parses the whole file. Blank lines are skipped; anything else that
// does not parse as a record is a storage fault, not a user error.
func (r *TextFileRepository) load() ([]inventory.Bracelet, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, shared.NewStorageError("read inventory file", err)
	}
	defer file.Close()

	var bracelets []inventory.Bracelet
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != textFileFieldCount {
			return nil, shared.NewStorageError("read inventory file",
				fmt.Errorf("line %d: expected %d fields, got %d", lineNo, textFileFieldCount, len(fields)))
		}

		bracelet, err := inventory.NewBraceletWithStatus(fields[0], fields[1], fields[2], fields[3], fields[4])
		if err != nil {
			return nil, shared.NewStorageError("read inventory file",
				fmt.Errorf("line %d: %w", lineNo, err))
		}
		bracelets = append(bracelets, *bracelet)
	}
	if err := scanner.Err(); err != nil {
		return nil, shared.NewStorageError("read inventory file", err)
	}
	return bracelets, nil
}

// save rewrites the file atomically via a temp file in the same directory
func (r *TextFileRepository) save(bracelets []inventory.Bracelet) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".inventory-*.tmp")
	if err != nil {
		return shared.NewStorageError("write inventory file", err)
	}
	tmpName := tmp.Name()

	writer := bufio.NewWriter(tmp)
	for i := range bracelets {
		if _, err := writer.WriteString(formatRecord(&bracelets[i]) + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return shared.NewStorageError("write inventory file", err)
		}
	}
	if err := writer.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return shared.NewStorageError("write inventory file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return shared.NewStorageError("write inventory file", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return shared.NewStorageError("write inventory file", err)
	}
	return nil
}

func formatRecord(b *inventory.Bracelet) string {
	return strings.Join([]string{
		b.ID,
		b.Description,
		strconv.Itoa(b.Quantity),
		b.Price.String(),
		string(b.Status),
	}, ",")
}
