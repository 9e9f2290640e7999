package product

import (
	"itemcompare/internal/csvid"
	"itemcompare/internal/product/controller"
	"itemcompare/internal/product/loader"
	"itemcompare/internal/product/repository"
	"itemcompare/internal/product/service"
	"itemcompare/internal/product/usecase"

	"go.uber.org/zap"
)

type Module struct {
	Controller *controller.ProductsController
	Loader     *loader.DataLoader
}

// NewModule owns the catalog: the loader writes to it once at startup and
// the controller reads from it afterwards.
func NewModule(source loader.Source, logger *zap.Logger) *Module {
	repo := repository.NewMemoryRepository()
	svc := service.NewService(repo, csvid.NewParser(), logger)
	uc := usecase.NewCatalogUseCase(svc)
	return &Module{
		Controller: controller.NewProductsController(uc, logger),
		Loader:     loader.NewDataLoader(source, svc, logger),
	}
}

// SourceFor picks the catalog document: a file when path is set, the
// bundled products.json otherwise.
func SourceFor(path string) loader.Source {
	if path == "" {
		return loader.BundledSource()
	}
	return loader.FileSource(path)
}
