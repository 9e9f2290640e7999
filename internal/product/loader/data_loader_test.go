package loader

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"itemcompare/internal/csvid"
	"itemcompare/internal/domain"
	apperrors "itemcompare/internal/errors"
	"itemcompare/internal/product/repository"
	"itemcompare/internal/product/service"
)

func stringSource(s string) Source {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

type mockSaver struct {
	SaveAllFunc func(ctx context.Context, products []*domain.Product) error
}

func (m *mockSaver) SaveAll(ctx context.Context, products []*domain.Product) error {
	return m.SaveAllFunc(ctx, products)
}

func newService() *service.ProductService {
	return service.NewService(repository.NewMemoryRepository(), csvid.NewParser(), zap.NewNop())
}

func TestRun_NotJSON(t *testing.T) {
	saver := &mockSaver{
		SaveAllFunc: func(ctx context.Context, products []*domain.Product) error {
			t.Fatal("SaveAll should not be called")
			return nil
		},
	}
	l := NewDataLoader(stringSource("<root>this is xml, not json</root>"), saver, zap.NewNop())

	err := l.Run(context.Background())

	de, ok := apperrors.IsDataLoadError(err)
	require.True(t, ok)
	assert.Equal(t, "unable to load product json", de.Message)
	assert.NotNil(t, de.Cause)
}

func TestRun_SourceFails(t *testing.T) {
	cause := errors.New("resource missing")
	source := func() (io.ReadCloser, error) { return nil, cause }

	err := NewDataLoader(source, newService(), zap.NewNop()).Run(context.Background())

	_, ok := apperrors.IsDataLoadError(err)
	require.True(t, ok)
	assert.ErrorIs(t, err, cause)
}

func TestRun_UnknownFieldRejected(t *testing.T) {
	err := NewDataLoader(stringSource(`[{"name":"x","color":"red"}]`), newService(), zap.NewNop()).Run(context.Background())

	_, ok := apperrors.IsDataLoadError(err)
	assert.True(t, ok)
}

func TestRun_TrailingDataRejected(t *testing.T) {
	err := NewDataLoader(stringSource(`[] []`), newService(), zap.NewNop()).Run(context.Background())

	_, ok := apperrors.IsDataLoadError(err)
	assert.True(t, ok)
}

func TestRun_NullDocument(t *testing.T) {
	err := NewDataLoader(stringSource(`null`), newService(), zap.NewNop()).Run(context.Background())

	de, ok := apperrors.IsDataLoadError(err)
	require.True(t, ok)
	_, isValidation := apperrors.IsValidationError(de.Cause)
	assert.True(t, isValidation)
}

func TestRun_NullElement(t *testing.T) {
	err := NewDataLoader(stringSource(`[{"name":"a"}, null]`), newService(), zap.NewNop()).Run(context.Background())

	_, ok := apperrors.IsDataLoadError(err)
	assert.True(t, ok)
}

func TestRun_SaverFails(t *testing.T) {
	saver := &mockSaver{
		SaveAllFunc: func(ctx context.Context, products []*domain.Product) error {
			return apperrors.NewInternalError("internal error saving product", nil)
		},
	}

	err := NewDataLoader(stringSource(`[{"name":"a"}]`), saver, zap.NewNop()).Run(context.Background())

	de, ok := apperrors.IsDataLoadError(err)
	require.True(t, ok)
	assert.Equal(t, "unable to store loaded products", de.Message)
}

func TestRun_AssignsMissingIDsAndKeepsExplicitOnes(t *testing.T) {
	svc := newService()
	doc := `[{"id":7,"name":"seven","price":1.5},{"name":"auto","price":"2.25"}]`

	require.NoError(t, NewDataLoader(stringSource(doc), svc, zap.NewNop()).Run(context.Background()))

	seven, err := svc.GetProductByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "seven", seven.Name)

	auto, err := svc.GetProductByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, "auto", auto.Name)
	assert.Equal(t, "2.25", auto.Price.String())
}

func TestRun_BundledCatalog(t *testing.T) {
	svc := newService()

	require.NoError(t, NewDataLoader(BundledSource(), svc, zap.NewNop()).Run(context.Background()))

	all, err := svc.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, p := range all {
		assert.Equal(t, int64(i+1), p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Price.IsPositive())
	}
}

func TestRun_FileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"from file","price":3}]`), 0o600))
	svc := newService()

	require.NoError(t, NewDataLoader(FileSource(path), svc, zap.NewNop()).Run(context.Background()))

	p, err := svc.GetProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "from file", p.Name)
}

func TestRun_FileSourceMissing(t *testing.T) {
	source := FileSource(filepath.Join(t.TempDir(), "missing.json"))

	err := NewDataLoader(source, newService(), zap.NewNop()).Run(context.Background())

	_, ok := apperrors.IsDataLoadError(err)
	require.True(t, ok)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
