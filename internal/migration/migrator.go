package migration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/downloader"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/storage"
)

// DefaultDelay is the pause between consecutive items of a batch
const DefaultDelay = 100 * time.Millisecond

// Option configures a Migrator
type Option func(*Migrator)

// WithDelay sets the pause between consecutive items of a batch
func WithDelay(d time.Duration) Option {
	return func(m *Migrator) {
		if d >= 0 {
			m.delay = d
		}
	}
}

// WithMaxSize caps the size of a single migrated item
func WithMaxSize(n int64) Option {
	return func(m *Migrator) {
		m.maxSize = n
	}
}

// Migrator copies content from a source provider to a target provider.
// Items are processed one at a time.
type Migrator struct {
	source     storage.Provider
	target     storage.Provider
	downloader downloader.Downloader
	json       adapter.JSON
	jcs        adapter.JCS
	clock      adapter.Clock
	delay      time.Duration
	maxSize    int64

	mu       sync.Mutex
	mappings map[string]string
}

// NewMigrator creates a migrator between two providers
func NewMigrator(
	source, target storage.Provider,
	dl downloader.Downloader,
	json adapter.JSON,
	jcs adapter.JCS,
	clock adapter.Clock,
	opts ...Option,
) *Migrator {
	m := &Migrator{
		source:     source,
		target:     target,
		downloader: dl,
		json:       json,
		jcs:        jcs,
		clock:      clock,
		delay:      DefaultDelay,
		maxSize:    downloader.DefaultMaxSize,
		mappings:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MigrateSingleAsset copies one content identifier. Failures are reported in the result.
func (m *Migrator) MigrateSingleAsset(ctx context.Context, cid string) domain.MigrationResult {
	result := domain.MigrationResult{OriginalCID: cid}

	newCID, err := m.migrate(ctx, cid)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to migrate content",
			zap.String("cid", cid),
			zap.String("source", string(m.source.Name())),
			zap.String("target", string(m.target.Name())),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}

	logger.InfoCtx(ctx, "Migrated content", zap.String("cid", cid), zap.String("newCid", newCID))

	result.Success = true
	result.NewCID = newCID
	return result
}

func (m *Migrator) migrate(ctx context.Context, cid string) (string, error) {
	data, contentType, err := m.download(ctx, m.source.GetFileURL(cid))
	if err != nil {
		return "", fmt.Errorf("failed to fetch from %s: %w", m.source.Name(), err)
	}

	name := "migrated-" + cid
	if isJSON(contentType) {
		if !m.json.Valid(data) {
			return "", fmt.Errorf("%w: content declared as JSON does not parse", domain.ErrInvalidFormat)
		}
		newCID, err := m.target.UploadJSON(ctx, name+".json", json.RawMessage(data))
		if err != nil {
			return "", fmt.Errorf("failed to upload to %s: %w", m.target.Name(), err)
		}
		return newCID, nil
	}

	newCID, err := m.target.UploadFile(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload to %s: %w", m.target.Name(), err)
	}
	return newCID, nil
}

// download returns the content and its media type, sniffing the bytes when the gateway gives no useful type
func (m *Migrator) download(ctx context.Context, url string) ([]byte, string, error) {
	res, err := m.downloader.Download(ctx, url)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if err := res.Close(); err != nil {
			logger.Warn("failed to close download", zap.Error(err), zap.String("url", url))
		}
	}()

	data, err := res.Bytes(m.maxSize)
	if err != nil {
		return nil, "", err
	}

	contentType := mediaType(res.ContentType())
	if contentType == "" || contentType == "application/octet-stream" || contentType == "text/plain" {
		contentType = mediaType(mimetype.Detect(data).String())
	}

	return data, contentType, nil
}

func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

func isJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// MigrateAllContent migrates every identifier in order, pausing between items
func (m *Migrator) MigrateAllContent(ctx context.Context, cids []string) *domain.MigrationReport {
	start := m.clock.Now()
	report := &domain.MigrationReport{
		ID:         ulid.MustNewDefault(start).String(),
		Source:     string(m.source.Name()),
		Target:     string(m.target.Name()),
		TotalItems: len(cids),
		Results:    make([]domain.MigrationResult, 0, len(cids)),
		StartTime:  start,
	}

	logger.InfoCtx(ctx, "Starting migration",
		zap.String("id", report.ID),
		zap.String("source", report.Source),
		zap.String("target", report.Target),
		zap.Int("items", len(cids)))

	for i, cid := range cids {
		result := m.MigrateSingleAsset(ctx, cid)
		report.Results = append(report.Results, result)

		if result.Success {
			report.SuccessCount++
			m.recordMapping(result.OriginalCID, result.NewCID)
		} else {
			report.FailureCount++
		}

		if i < len(cids)-1 && m.delay > 0 {
			if err := m.clock.Sleep(ctx, m.delay); err != nil {
				logger.WarnCtx(ctx, "Delay between migration items interrupted", zap.Error(err))
			}
		}
	}

	report.EndTime = m.clock.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	logger.InfoCtx(ctx, "Migration finished",
		zap.String("id", report.ID),
		zap.Int("success", report.SuccessCount),
		zap.Int("failure", report.FailureCount),
		zap.Duration("duration", report.Duration))

	return report
}

func (m *Migrator) recordMapping(original, migrated string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mappings[original] = migrated
}

// Mappings returns a copy of the original to new identifier table accumulated so far
func (m *Migrator) Mappings() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]string, len(m.mappings))
	for k, v := range m.mappings {
		out[k] = v
	}
	return out
}

// ValidateMigration compares original and migrated content byte for byte
func (m *Migrator) ValidateMigration(ctx context.Context, mappings map[string]string) *domain.ValidationReport {
	report := &domain.ValidationReport{Errors: []string{}}

	originals := make([]string, 0, len(mappings))
	for original := range mappings {
		originals = append(originals, original)
	}
	sort.Strings(originals)

	for _, original := range originals {
		migrated := mappings[original]
		report.TotalValidated++

		if err := m.validatePair(ctx, original, migrated); err != nil {
			report.InvalidCount++
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		report.ValidCount++
	}

	logger.InfoCtx(ctx, "Migration validated",
		zap.Int("total", report.TotalValidated),
		zap.Int("valid", report.ValidCount),
		zap.Int("invalid", report.InvalidCount))

	return report
}

func (m *Migrator) validatePair(ctx context.Context, original, migrated string) error {
	want, _, err := m.download(ctx, m.source.GetFileURL(original))
	if err != nil {
		return fmt.Errorf("%s: failed to fetch original: %v", original, err)
	}

	got, _, err := m.download(ctx, m.target.GetFileURL(migrated))
	if err != nil {
		return fmt.Errorf("%s: failed to fetch migrated %s: %v", original, migrated, err)
	}

	if bytes.Equal(want, got) {
		return nil
	}

	// JSON is re-serialized on upload, so whitespace is not significant but key order is
	isJSON := m.json.Valid(want) && m.json.Valid(got)
	if isJSON && m.compactEqual(want, got) {
		return nil
	}

	msg := fmt.Sprintf("%s: content mismatch with migrated %s", original, migrated)
	if isJSON {
		if equal, err := m.jcs.CanonicalEqual(want, got); err == nil && equal {
			msg += " (canonical JSON equal, only key order differs)"
		}
	}
	return errors.New(msg)
}

func (m *Migrator) compactEqual(a, b []byte) bool {
	ca, err := m.json.Compact(a)
	if err != nil {
		return false
	}
	cb, err := m.json.Compact(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ca, cb)
}

// RollbackMigration is not supported; migrated content has to be unpinned by an operator
func (m *Migrator) RollbackMigration(ctx context.Context) error {
	logger.WarnCtx(ctx, "Rollback requested for migration", zap.Int("mappings", len(m.Mappings())))
	return fmt.Errorf("%w: rollback requires manual operator intervention", domain.ErrNotImplemented)
}
