package services_test

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/pkg/apperr"
	"github.com/dwisetyadi/warungpos/pkg/storage"
)

func newReceiptFixture() *services.ReceiptService {
	return services.NewReceiptService(repositories.NewMemoryReceiptRepository())
}

func line(name string, price, quantity interface{}) interface{} {
	return map[string]interface{}{"name": name, "price": price, "quantity": quantity}
}

func TestReceiptCreateComputesTotal(t *testing.T) {
	svc := newReceiptFixture()

	receipt, err := svc.Create(context.Background(), []interface{}{
		line("Teh", 5000.0, 2.0),
		line("Kopi", 6000.0, 1.0),
	})
	require.NoError(t, err)
	assert.False(t, receipt.ID.IsZero())
	assert.Equal(t, 16000.0, receipt.Total())
	assert.WithinDuration(t, time.Now().UTC(), receipt.CreatedAt, time.Minute)
}

func TestReceiptCreateCoercesLooseLines(t *testing.T) {
	svc := newReceiptFixture()

	receipt, err := svc.Create(context.Background(), []interface{}{
		map[string]interface{}{"price": "5000", "quantity": "2"},                     // no name, numeric strings
		map[string]interface{}{"name": "Kopi", "price": "abc"},                       // malformed price, no quantity
		map[string]interface{}{"name": "Mie", "price": 12000.0, "quantity": true},    // non-numeric quantity
	})
	require.NoError(t, err)
	require.Len(t, receipt.Lines, 3)

	assert.Equal(t, "", receipt.Lines[0].Name)
	assert.Equal(t, 5000.0, receipt.Lines[0].Price)
	assert.Equal(t, 2, receipt.Lines[0].Quantity)

	assert.Equal(t, 0.0, receipt.Lines[1].Price)
	assert.Equal(t, 0, receipt.Lines[1].Quantity)

	assert.Equal(t, 0, receipt.Lines[2].Quantity)
	assert.Equal(t, 10000.0, receipt.Total())
}

func TestReceiptCreateRejectsEmpty(t *testing.T) {
	svc := newReceiptFixture()

	_, err := svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = svc.Create(context.Background(), []interface{}{})
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestReceiptCreateCollapsesNonObjectLines(t *testing.T) {
	svc := newReceiptFixture()

	// A line that is not an object is still archived, as an empty line.
	receipt, err := svc.Create(context.Background(), []interface{}{
		5.0,
		"loose",
		nil,
		line("Teh", 5000.0, 1.0),
	})
	require.NoError(t, err)
	require.Len(t, receipt.Lines, 4)

	for _, l := range receipt.Lines[:3] {
		assert.Equal(t, "", l.Name)
		assert.Equal(t, 0.0, l.Price)
		assert.Equal(t, 0, l.Quantity)
	}
	assert.Equal(t, 5000.0, receipt.Total())
}

func TestReceiptListNewestFirst(t *testing.T) {
	repo := repositories.NewMemoryReceiptRepository()
	svc := services.NewReceiptService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, []interface{}{line("A", 1.0, 1.0)})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Create(ctx, []interface{}{line("B", 1.0, 1.0)})
	require.NoError(t, err)

	receipts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, second.ID, receipts[0].ID)
	assert.Equal(t, first.ID, receipts[1].ID)
}

func TestReceiptIsSnapshot(t *testing.T) {
	svc := newReceiptFixture()
	ctx := context.Background()

	raw := []interface{}{line("Teh", 5000.0, 2.0)}
	receipt, err := svc.Create(ctx, raw)
	require.NoError(t, err)

	// Mutating the submitted payload after archiving changes nothing.
	raw[0].(map[string]interface{})["price"] = 999999.0

	got, err := svc.Get(ctx, receipt.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 5000.0, got.Lines[0].Price)
	assert.Equal(t, 10000.0, got.Total())
}

func TestReceiptGetAndDelete(t *testing.T) {
	svc := newReceiptFixture()
	ctx := context.Background()

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = svc.Get(ctx, "64a0f0f0f0f0f0f0f0f0f0f0")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	receipt, err := svc.Create(ctx, []interface{}{line("Teh", 5000.0, 1.0)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, receipt.ID.Hex()))
	assert.ErrorIs(t, svc.Delete(ctx, receipt.ID.Hex()), apperr.ErrNotFound)
}

// fakeDisk records writes in memory for export tests.
type fakeDisk struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeDisk() *fakeDisk { return &fakeDisk{files: map[string][]byte{}} }

func (d *fakeDisk) Put(path string, content []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[path] = content
	return nil
}

func (d *fakeDisk) PutStream(path string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return d.Put(path, b)
}

func (d *fakeDisk) Get(path string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.files[path], nil
}

func (d *fakeDisk) Exists(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.files[path]
	return ok
}

func (d *fakeDisk) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
	return nil
}

func (d *fakeDisk) URL(path string) string { return "http://storage.test/" + path }

func TestReceiptExportWritesNota(t *testing.T) {
	disk := newFakeDisk()
	storage.RegisterDisk("local", disk)

	svc := newReceiptFixture()
	ctx := context.Background()

	receipt, err := svc.Create(ctx, []interface{}{
		line("Es Teh", 5000.0, 2.0),
		line("Kerupuk", 2000.0, 3.0),
	})
	require.NoError(t, err)

	url, err := svc.Export(ctx, receipt.ID.Hex())
	require.NoError(t, err)

	path := "exports/nota-" + receipt.ID.Hex() + ".txt"
	assert.Equal(t, "http://storage.test/"+path, url)
	require.True(t, disk.Exists(path))

	nota, err := disk.Get(path)
	require.NoError(t, err)
	body := string(nota)
	assert.True(t, strings.Contains(body, "Es Teh"))
	assert.True(t, strings.Contains(body, "16000"))
}

func TestReceiptExportUnknownID(t *testing.T) {
	storage.RegisterDisk("local", newFakeDisk())
	svc := newReceiptFixture()

	_, err := svc.Export(context.Background(), "64a0f0f0f0f0f0f0f0f0f0f0")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
