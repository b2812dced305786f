package app

import (
	"fmt"
	"sync"

	hashService "github.com/allisson/hashprefix/internal/hash/service"
	hashUseCase "github.com/allisson/hashprefix/internal/hash/usecase"
)

// hashComponents groups the lazily built hash search dependencies.
type hashComponents struct {
	hashGenerator     hashService.Generator
	searchUseCase     hashUseCase.SearchUseCase
	hashGeneratorInit sync.Once
	searchUseCaseInit sync.Once
}

// HashGenerator returns the MD5 hash generator.
func (c *Container) HashGenerator() hashService.Generator {
	c.hashGeneratorInit.Do(func() {
		c.hashGenerator = hashService.NewMD5Generator(nil)
	})
	return c.hashGenerator
}

// SearchUseCase returns the prefix search use case, decorated with metrics.
func (c *Container) SearchUseCase() (hashUseCase.SearchUseCase, error) {
	var err error
	c.searchUseCaseInit.Do(func() {
		c.searchUseCase, err = c.initSearchUseCase()
		if err != nil {
			c.setInitError("searchUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("searchUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.searchUseCase, nil
}

func (c *Container) initSearchUseCase() (hashUseCase.SearchUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for search use case: %w", err)
	}

	useCase := hashUseCase.NewSearchUseCase(c.HashGenerator(), c.Output(), c.Logger())
	return hashUseCase.NewSearchUseCaseWithMetrics(useCase, businessMetrics), nil
}
