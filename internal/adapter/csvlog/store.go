package csvlog

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sipzooppp/orders/internal/domain"
	"github.com/sipzooppp/orders/internal/interfaces"
)

const timestampLayout = "2006-01-02 15:04:05"

var header = []string{"Timestamp", "Customer Name", "Mobile Number", "Items Ordered", "Total Price ($)"}

// Store persists the order log as a single CSV file, one row per order, with
// the items column serialized as a JSON array. Every append rewrites the
// whole file via a temp file and rename, so a reader never observes a
// truncated log. The file name is derived from the process-start instant and
// never changes for the lifetime of the run.
type Store struct {
	path string

	mu      sync.Mutex
	records []domain.OrderRecord
}

func New(dir string, start time.Time) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	name := fmt.Sprintf("orders_%s.csv", start.Format("20060102_150405"))
	return &Store{path: filepath.Join(dir, name)}, nil
}

var _ interfaces.OrderLogStore = (*Store)(nil)

// Load reads the persisted log. A missing or zero-length file is the normal
// first-run case and yields an empty log; anything unparseable yields
// domain.ErrCorruptLog and leaves the in-memory log empty.
func (s *Store) Load(_ context.Context) ([]domain.OrderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptLog, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptLog, err)
	}

	s.records = records
	return s.snapshot(), nil
}

// Append adds the record to the in-memory log and rewrites the persisted
// file. On write failure the in-memory log is rolled back and the order is
// not considered placed.
func (s *Store) Append(_ context.Context, record domain.OrderRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)

	if err := s.writeAll(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return nil
}

// All returns the in-memory log in insertion order.
func (s *Store) All() []domain.OrderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Export returns the persisted file's current bytes, exactly as written.
// Before the first order it returns a header-only CSV.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return encode(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read order log: %w", err)
	}
	return data, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) snapshot() []domain.OrderRecord {
	out := make([]domain.OrderRecord, len(s.records))
	copy(out, s.records)
	return out
}

// writeAll commits the full log with temp-file-then-rename so the persisted
// file always holds a complete CSV.
func (s *Store) writeAll() error {
	data, err := encode(s.records)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func encode(records []domain.OrderRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		items, err := json.Marshal(r.Items)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal items: %w", err)
		}

		row := []string{
			r.CreatedAt.Format(timestampLayout),
			r.CustomerName,
			r.MobileNumber,
			string(items),
			r.TotalPrice.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) ([]domain.OrderRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	// The first row must be the header; a 5-column data row in its place
	// means the file was rewritten by something else and dropping it would
	// silently lose an order.
	if !slices.Equal(rows[0], header) {
		return nil, fmt.Errorf("bad header row: %q", rows[0])
	}

	var records []domain.OrderRecord
	for i, row := range rows[1:] {
		record, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeRow(row []string) (domain.OrderRecord, error) {
	createdAt, err := time.Parse(timestampLayout, row[0])
	if err != nil {
		return domain.OrderRecord{}, fmt.Errorf("bad timestamp: %w", err)
	}

	var items []domain.OrderLine
	if err := json.Unmarshal([]byte(row[3]), &items); err != nil {
		return domain.OrderRecord{}, fmt.Errorf("bad items column: %w", err)
	}

	total, err := decimal.NewFromString(row[4])
	if err != nil {
		return domain.OrderRecord{}, fmt.Errorf("bad total price: %w", err)
	}

	return domain.OrderRecord{
		CreatedAt:    createdAt,
		CustomerName: row[1],
		MobileNumber: row[2],
		Items:        items,
		TotalPrice:   total,
	}, nil
}
