package loader

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"itemcompare/internal/domain"
	"itemcompare/internal/dto"
	apperrors "itemcompare/internal/errors"

	"go.uber.org/zap"
)

//go:embed products.json
var bundledProducts []byte

// Source opens the catalog document. The loader closes it.
type Source func() (io.ReadCloser, error)

type Saver interface {
	SaveAll(ctx context.Context, products []*domain.Product) error
}

func BundledSource() Source {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(bundledProducts)), nil
	}
}

func FileSource(path string) Source {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

type DataLoader struct {
	source Source
	saver  Saver
	logger *zap.Logger
}

func NewDataLoader(source Source, saver Saver, logger *zap.Logger) *DataLoader {
	return &DataLoader{
		source: source,
		saver:  saver,
		logger: logger,
	}
}

// Run populates the catalog once. Every failure comes back as a
// *errors.DataLoadError.
func (l *DataLoader) Run(ctx context.Context) error {
	rc, err := l.source()
	if err != nil {
		return apperrors.NewDataLoadError("unable to open product json", err)
	}
	defer rc.Close()

	records, err := decodeProducts(rc)
	if err != nil {
		return apperrors.NewDataLoadError("unable to load product json", err)
	}

	var products []*domain.Product
	if records != nil {
		products = make([]*domain.Product, len(records))
		for i, rec := range records {
			if rec == nil {
				continue
			}
			p := rec.ToDomain()
			products[i] = &p
		}
	}

	if err := l.saver.SaveAll(ctx, products); err != nil {
		return apperrors.NewDataLoadError("unable to store loaded products", err)
	}

	l.logger.Info("products loaded", zap.Int("count", len(products)))
	return nil
}

func decodeProducts(r io.Reader) ([]*dto.ProductDTO, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []*dto.ProductDTO
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decoding products: unexpected data after top-level array")
	}
	return records, nil
}
