package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
)

type jsonStoreRepository struct {
	path string
	log  *logrus.Logger
}

// NewJSONStoreRepository persists the ledger as a single indented JSON
// document at path.
func NewJSONStoreRepository(path string, logger *logrus.Logger) domain.StoreRepository {
	return &jsonStoreRepository{
		path: path,
		log:  logger,
	}
}

func (r *jsonStoreRepository) Load() *domain.StoreData {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Infof("Store file %s not found, starting with empty ledger", r.path)
		} else {
			r.log.Warnf("Failed to read store file %s, starting with empty ledger: %v", r.path, err)
		}
		return domain.NewStoreData()
	}

	data := domain.NewStoreData()
	if err := json.Unmarshal(raw, data); err != nil {
		r.log.Warnf("Failed to parse store file %s, starting with empty ledger: %v", r.path, err)
		return domain.NewStoreData()
	}

	// Guard against a hand-edited document with missing lists.
	if data.Products == nil {
		data.Products = []domain.Product{}
	}
	if data.Purchases == nil {
		data.Purchases = []domain.Purchase{}
	}
	if data.Sales == nil {
		data.Sales = []domain.Sale{}
	}
	if data.Customers == nil {
		data.Customers = []domain.Customer{}
	}

	r.log.Infof("Loaded store data from %s (%d products, %d purchases, %d sales, %d customers)",
		r.path, len(data.Products), len(data.Purchases), len(data.Sales), len(data.Customers))
	return data
}

func (r *jsonStoreRepository) Save(data *domain.StoreData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		r.log.Errorf("Failed to marshal store data: %v", err)
		return fmt.Errorf("could not marshal store data: %w", err)
	}

	if err := os.WriteFile(r.path, raw, 0644); err != nil {
		r.log.Errorf("Failed to write store file %s: %v", r.path, err)
		return fmt.Errorf("could not write store file: %w", err)
	}
	return nil
}

func (r *jsonStoreRepository) Reset() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		r.log.Errorf("Failed to remove store file %s: %v", r.path, err)
		return fmt.Errorf("could not remove store file: %w", err)
	}
	r.log.Infof("Store file %s removed", r.path)
	return nil
}
